package domain

import "time"

// Workplace is a tenant. Every asset and depreciation entry belongs to exactly one.
type Workplace struct {
	WorkplaceID string `json:"workplaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"` // disabled workplaces reject every request
	AuditFields
}

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // Users with read-only access to workplace data
	RoleRemoved  UserWorkplaceRole = "REMOVED"  // For users who have been removed from the workplace
)

// UserWorkplace represents the membership of a User in a Workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`      // FK -> users.user_id
	UserName    string            `json:"userName"`    // Name of the user
	WorkplaceID string            `json:"workplaceID"` // FK -> workplaces.workplace_id
	Role        UserWorkplaceRole `json:"role"`        // Role of the user in this specific workplace
	JoinedAt    time.Time         `json:"joinedAt"`    // Timestamp when the user joined the workplace
}
