package issuance

import (
	"errors"
	"fmt"

	"medsupply-backend/internal/audit"
	"medsupply-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type IssueLineResponse struct {
	ID         uint    `json:"id"`
	ProductID  uint    `json:"product_id"`
	Qty        float64 `json:"qty"`
	UOM        string  `json:"uom"`
	BatchNo    string  `json:"batch_no"`
	ExpiryDate *string `json:"expiry_date"`
}

type IssueResponse struct {
	ID         uint                `json:"id"`
	IssueNo    string              `json:"issue_no"`
	BranchID   uint                `json:"branch_id"`
	EmployeeID uint                `json:"employee_id"`
	Status     string              `json:"status"`
	IssueDate  string              `json:"issue_date"`
	Remarks    string              `json:"remarks"`
	CreatedBy  uint                `json:"created_by"`
	ApprovedBy *uint               `json:"approved_by"`
	ApprovedAt *string             `json:"approved_at"`
	CreatedAt  string              `json:"created_at"`
	Items      []IssueLineResponse `json:"items,omitempty"`
}

// POST /api/issue
func CreateIssueHandler(svc *Service, recordAudit func(audit.LogOptions) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateIssueRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body.",
			})
		}

		result, err := svc.CreateIssue(c.UserContext(), &body)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": verr.Reason,
				})
			}
			log.WithError(err).Error("issuance create failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create issuance.",
				"error":   err.Error(),
			})
		}

		if recordAudit != nil {
			if err := recordAudit(audit.LogOptions{
				BranchID:    &body.BranchID,
				UserID:      body.UserID,
				EntityType:  "issue",
				EntityID:    result.IssueID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Issuance %s created: %d item(s)", result.IssueNo, len(body.Items)),
				After:       result,
			}); err != nil {
				log.WithError(err).Warn("audit write skipped")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Issuance created successfully!",
			"issueId": result.IssueID,
			"issueNo": result.IssueNo,
		})
	}
}

// GET /api/issues/:id
func GetIssueHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid issue id.",
			})
		}

		issue, err := svc.GetIssue(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "Issue not found.",
				})
			}
			log.WithError(err).Error("issue lookup failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not load issue.",
				"error":   err.Error(),
			})
		}

		return c.JSON(toIssueResponse(issue, true))
	}
}

// GET /api/issues
func ListIssuesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		issues, err := svc.ListIssues(c.UserContext())
		if err != nil {
			log.WithError(err).Error("issue list failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not list issues.",
				"error":   err.Error(),
			})
		}

		resp := make([]IssueResponse, 0, len(issues))
		for _, issue := range issues {
			resp = append(resp, toIssueResponse(issue, false))
		}
		return c.JSON(resp)
	}
}

func toIssueResponse(issue models.Issue, withItems bool) IssueResponse {
	resp := IssueResponse{
		ID:         issue.ID,
		IssueNo:    issue.IssueNo,
		BranchID:   issue.BranchID,
		EmployeeID: issue.EmployeeID,
		Status:     string(issue.Status),
		IssueDate:  issue.IssueDate.Format(dateLayout),
		Remarks:    issue.Remarks,
		CreatedBy:  issue.CreatedBy,
		ApprovedBy: issue.ApprovedBy,
		CreatedAt:  issue.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if issue.ApprovedAt != nil {
		formatted := issue.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &formatted
	}
	if withItems {
		resp.Items = make([]IssueLineResponse, 0, len(issue.Lines))
		for _, line := range issue.Lines {
			item := IssueLineResponse{
				ID:        line.ID,
				ProductID: line.ProductID,
				Qty:       line.Qty,
				UOM:       line.UOM,
				BatchNo:   line.BatchNo,
			}
			if line.ExpiryDate != nil {
				formatted := line.ExpiryDate.Format(dateLayout)
				item.ExpiryDate = &formatted
			}
			resp.Items = append(resp.Items, item)
		}
	}
	return resp
}
