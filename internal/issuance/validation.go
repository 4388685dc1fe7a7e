package issuance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"medsupply-backend/internal/models"
)

// ValidationError is a client-caused failure. The HTTP layer reports it as
// 400 and nothing is written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var validate = validator.New()

const dateLayout = "2006-01-02"

// toModels checks the request and builds the header and line rows to be
// persisted. No store access happens here.
func (r *CreateIssueRequest) toModels() (models.Issue, []models.IssueLine, error) {
	if err := validate.Struct(r); err != nil {
		return models.Issue{}, nil, &ValidationError{Reason: "Missing required fields, or user is not identified."}
	}

	issueDate, err := time.Parse(dateLayout, r.IssueDate)
	if err != nil {
		return models.Issue{}, nil, &ValidationError{Reason: "issue_date must be in 'YYYY-MM-DD' format."}
	}

	lines, err := buildLines(r.Items)
	if err != nil {
		return models.Issue{}, nil, err
	}

	issue := models.Issue{
		BranchID:   r.BranchID,
		EmployeeID: r.EmployeeID,
		Status:     models.IssueStatus(r.Status),
		IssueDate:  issueDate,
		Remarks:    r.Remarks,
		CreatedBy:  r.UserID,
	}
	return issue, lines, nil
}

// buildLines validates each requested line and normalizes the optional
// fields. An empty expiry_date means no expiry. Fails on the first bad item.
func buildLines(items []LineItemRequest) ([]models.IssueLine, error) {
	lines := make([]models.IssueLine, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Qty == 0 {
			return nil, &ValidationError{Reason: "Each item must have a product and quantity."}
		}

		var expiry *time.Time
		if item.ExpiryDate != "" {
			d, err := time.Parse(dateLayout, item.ExpiryDate)
			if err != nil {
				return nil, &ValidationError{Reason: "expiry_date must be empty or in 'YYYY-MM-DD' format."}
			}
			expiry = &d
		}

		lines = append(lines, models.IssueLine{
			ProductID:  item.ProductID,
			Qty:        item.Qty,
			UOM:        item.UOM,
			BatchNo:    item.BatchNo,
			ExpiryDate: expiry,
		})
	}
	return lines, nil
}
