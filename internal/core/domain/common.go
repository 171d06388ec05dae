package domain

import "time"

// AuditFields holds who handed a document to the backend and when.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID or API key label from the auth middleware
}
