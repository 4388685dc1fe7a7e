package issuance

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medsupply-backend/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle as an issuance Store. The connection is
// borrowed per transaction and released on every exit path, including
// caller cancellation.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func (s *gormStore) GetIssue(ctx context.Context, id uint) (models.Issue, error) {
	var issue models.Issue
	err := s.db.WithContext(ctx).Preload("Lines").First(&issue, "id = ?", id).Error
	return issue, err
}

func (s *gormStore) ListIssues(ctx context.Context) ([]models.Issue, error) {
	var issues []models.Issue
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&issues).Error
	return issues, err
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) InsertIssue(issue *models.Issue) error {
	return t.db.Create(issue).Error
}

func (t *gormTx) SetIssueNo(issueID uint, issueNo string) error {
	return t.db.Model(&models.Issue{}).Where("id = ?", issueID).
		Update("issue_no", issueNo).Error
}

func (t *gormTx) StampApproval(issueID uint, approvedBy uint, approvedAt time.Time) error {
	return t.db.Model(&models.Issue{}).Where("id = ?", issueID).
		Updates(map[string]interface{}{
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		}).Error
}

func (t *gormTx) InsertLine(line *models.IssueLine) error {
	return t.db.Create(line).Error
}
