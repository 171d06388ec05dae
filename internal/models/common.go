package models

import "time"

// AuditFields are the creation columns shared by every document table.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CreatedBy string    `json:"createdBy" db:"created_by"`
}
