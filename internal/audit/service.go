package audit

import (
	"encoding/json"
	"fmt"

	"medsupply-backend/internal/database"
	"medsupply-backend/internal/models"
)

type LogOptions struct {
	BranchID    *uint
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	After       any
}

// WriteLog records who created what. Best effort: callers log a warning on
// failure and never fail the business operation over it.
func WriteLog(opts LogOptions) error {
	// jsonb rejects the empty string, use the JSON null literal instead
	afterStr := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		BranchID:    opts.BranchID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log write failed: %w", err)
	}

	return nil
}
