package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BranchID *uint `json:"branch_id"`

	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // denormalized display name

	// e.g. "issue", "product"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action AuditAction `gorm:"size:20" json:"action"`

	Description string `gorm:"size:255" json:"description"`

	// After-image of the created entity (JSON). Issuances are immutable,
	// so there is no before-image to keep.
	AfterData string `gorm:"type:jsonb" json:"after_data"`
}
