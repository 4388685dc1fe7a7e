package directory

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"medsupply-backend/internal/models"
)

// DBSource serves the directory from the local users/branches tables.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

func (s *DBSource) ActiveUsers(ctx context.Context) ([]UserEntry, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]UserEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, UserEntry{UserID: u.ID, FullName: u.FullName})
	}
	return entries, nil
}

func (s *DBSource) ActiveBranches(ctx context.Context) ([]BranchEntry, error) {
	var branches []models.Branch
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&branches).Error; err != nil {
		return nil, err
	}

	entries := make([]BranchEntry, 0, len(branches))
	for _, b := range branches {
		entries = append(entries, BranchEntry{ID: b.ID, BranchName: b.Name})
	}
	return entries, nil
}

func (s *DBSource) LookupCredential(ctx context.Context, email string) (Credential, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Credential{}, ErrUserNotFound
		}
		return Credential{}, err
	}
	if !user.IsActive {
		return Credential{}, ErrUserNotFound
	}
	return Credential{UserID: user.ID, PasswordHash: user.PasswordHash}, nil
}
