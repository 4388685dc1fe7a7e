package issuance

import (
	"context"
	"fmt"
	"time"

	"medsupply-backend/internal/models"
)

// Store gives the coordinator transactional access to the issuance tables.
// Everything inside the InTx callback either commits as a whole or rolls
// back as a whole.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	GetIssue(ctx context.Context, id uint) (models.Issue, error)
	ListIssues(ctx context.Context) ([]models.Issue, error)
}

type Tx interface {
	// InsertIssue writes the header row and fills in the assigned id.
	InsertIssue(issue *models.Issue) error
	SetIssueNo(issueID uint, issueNo string) error
	StampApproval(issueID uint, approvedBy uint, approvedAt time.Time) error
	InsertLine(line *models.IssueLine) error
}

// Service coordinates the issuance write: header insert, number assignment,
// optional approval stamping and line inserts, as one atomic unit.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) CreateIssue(ctx context.Context, req *CreateIssueRequest) (CreateResult, error) {
	issue, lines, err := req.toModels()
	if err != nil {
		// Client error: no transaction is opened.
		return CreateResult{}, err
	}

	var result CreateResult
	err = s.store.InTx(ctx, func(tx Tx) error {
		issue.IssueNo = placeholderIssueNo
		if err := tx.InsertIssue(&issue); err != nil {
			return fmt.Errorf("insert issue header: %w", err)
		}

		// The number embeds the row id, so it can only be assigned now.
		issueNo := FormatIssueNo(s.now().Year(), issue.ID)
		if err := tx.SetIssueNo(issue.ID, issueNo); err != nil {
			return fmt.Errorf("assign issue number: %w", err)
		}

		if issue.Status == models.IssueStatusApproved {
			if err := tx.StampApproval(issue.ID, req.UserID, s.now()); err != nil {
				return fmt.Errorf("stamp approval: %w", err)
			}
		}

		for i := range lines {
			if lines[i].ProductID == 0 || lines[i].Qty == 0 {
				return &ValidationError{Reason: "Each item must have a product and quantity."}
			}
			lines[i].IssueID = issue.ID
			if err := tx.InsertLine(&lines[i]); err != nil {
				return fmt.Errorf("insert issue line %d: %w", i+1, err)
			}
		}

		result = CreateResult{IssueID: issue.ID, IssueNo: issueNo}
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}
	return result, nil
}

func (s *Service) GetIssue(ctx context.Context, id uint) (models.Issue, error) {
	return s.store.GetIssue(ctx, id)
}

func (s *Service) ListIssues(ctx context.Context) ([]models.Issue, error) {
	return s.store.ListIssues(ctx)
}
