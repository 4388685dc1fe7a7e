package directory

import (
	"context"
	"errors"
)

// The two deployment variants disagree on where users and branches live:
// an external directory service or local tables. Source hides the choice
// from the handlers.
type Source interface {
	ActiveUsers(ctx context.Context) ([]UserEntry, error)
	ActiveBranches(ctx context.Context) ([]BranchEntry, error)
	// LookupCredential resolves an email to the stored credential for login.
	// Returns ErrUserNotFound when the email is unknown.
	LookupCredential(ctx context.Context, email string) (Credential, error)
}

var ErrUserNotFound = errors.New("user not found")

type UserEntry struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
}

type BranchEntry struct {
	ID         uint   `json:"id"`
	BranchName string `json:"branch_name"`
}

type Credential struct {
	UserID       uint
	PasswordHash string
}
