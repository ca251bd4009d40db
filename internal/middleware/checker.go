package middleware

import (
	"context"
	"errors"
)

// These declarations live here (rather than in internal/auth, which
// re-exports them via aliases) so that the auth handler can import
// middleware without creating an import cycle.

var ErrNotLoggedIn = errors.New("not logged in")

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleUser:
		return true
	}
	return false
}

// Checker resolves a session token to the role it was opened with.
// Expired or unknown tokens fail with ErrNotLoggedIn.
type Checker interface {
	RoleOf(ctx context.Context, token string) (Role, error)
}
