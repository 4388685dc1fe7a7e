package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// APISource reads users and branches from the external directory service.
// The service stores bcrypt hashes in its password field.
type APISource struct {
	userURL   string
	branchURL string
	client    *http.Client
}

func NewAPISource(userURL, branchURL string, timeout time.Duration) *APISource {
	return &APISource{
		userURL:   userURL,
		branchURL: branchURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// Wire shapes of the external service.
type apiUser struct {
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive bool   `json:"isActive"`
}

type apiBranch struct {
	ID         uint   `json:"id"`
	BranchName string `json:"branchName"`
	IsActive   int    `json:"isActive"`
}

func (s *APISource) ActiveUsers(ctx context.Context) ([]UserEntry, error) {
	var users []apiUser
	if err := s.fetch(ctx, s.userURL, &users); err != nil {
		return nil, fmt.Errorf("user service: %w", err)
	}

	entries := make([]UserEntry, 0, len(users))
	for _, u := range users {
		if !u.IsActive {
			continue
		}
		entries = append(entries, UserEntry{UserID: u.UserID, FullName: u.FullName})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FullName < entries[j].FullName
	})
	return entries, nil
}

func (s *APISource) ActiveBranches(ctx context.Context) ([]BranchEntry, error) {
	var branches []apiBranch
	if err := s.fetch(ctx, s.branchURL, &branches); err != nil {
		return nil, fmt.Errorf("branch service: %w", err)
	}

	entries := make([]BranchEntry, 0, len(branches))
	for _, b := range branches {
		if b.IsActive != 1 {
			continue
		}
		entries = append(entries, BranchEntry{ID: b.ID, BranchName: b.BranchName})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].BranchName < entries[j].BranchName
	})
	return entries, nil
}

func (s *APISource) LookupCredential(ctx context.Context, email string) (Credential, error) {
	var users []apiUser
	if err := s.fetch(ctx, s.userURL, &users); err != nil {
		return Credential{}, fmt.Errorf("user service: %w", err)
	}

	email = strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return Credential{UserID: u.UserID, PasswordHash: u.Password}, nil
		}
	}
	return Credential{}, ErrUserNotFound
}

func (s *APISource) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
