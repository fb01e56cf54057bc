package domain

import "time"

// AuditFields records who created and last changed a record, and when. Times are UTC.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a new record as created and last updated by userID at the given time.
func NewAuditFields(userID string, at time.Time) AuditFields {
	at = at.UTC()
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     userID,
		LastUpdatedAt: at,
		LastUpdatedBy: userID,
	}
}

// Touch marks the record as last updated by userID.
func (a *AuditFields) Touch(userID string, at time.Time) {
	a.LastUpdatedAt = at.UTC()
	a.LastUpdatedBy = userID
}
