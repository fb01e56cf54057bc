package models

import "time"

// Workplace is the workplaces row.
type Workplace struct {
	WorkplaceID string `db:"workplace_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// UserWorkplace is the user_workplaces row.
type UserWorkplace struct {
	UserID      string    `db:"user_id"`
	WorkplaceID string    `db:"workplace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
