package audit

import (
	"fmt"

	"medsupply-backend/internal/database"
	"medsupply-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	BranchID    *uint              `json:"branch_id"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/audit-logs?entity_type=issue&entity_id=1&branch_id=1
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if bidStr := c.Query("branch_id"); bidStr != "" {
			var bid uint
			if _, err := fmt.Sscan(bidStr, &bid); err == nil && bid > 0 {
				dbq = dbq.Where("branch_id = ?", bid)
			}
		}
		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if eidStr := c.Query("entity_id"); eidStr != "" {
			var eid uint
			if _, err := fmt.Sscan(eidStr, &eid); err == nil && eid > 0 {
				dbq = dbq.Where("entity_id = ?", eid)
			}
		}
		if uidStr := c.Query("user_id"); uidStr != "" {
			var uid uint
			if _, err := fmt.Sscan(uidStr, &uid); err == nil && uid > 0 {
				dbq = dbq.Where("user_id = ?", uid)
			}
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs.")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, entry := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          entry.ID,
				CreatedAt:   entry.CreatedAt.Format("2006-01-02 15:04:05"),
				BranchID:    entry.BranchID,
				UserID:      entry.UserID,
				UserName:    entry.UserName,
				EntityType:  entry.EntityType,
				EntityID:    entry.EntityID,
				Action:      entry.Action,
				Description: entry.Description,
			})
		}

		return c.JSON(resp)
	}
}
