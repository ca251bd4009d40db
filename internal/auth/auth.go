package auth

import (
	"errors"

	"github.com/robmck/fitlife/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotLoggedIn and the Role declarations live in the middleware
	// package (aliased here) to avoid an auth <-> middleware import cycle.
	ErrNotLoggedIn = middleware.ErrNotLoggedIn
)

type Role = middleware.Role

const (
	RoleAdmin   = middleware.RoleAdmin
	RoleTrainer = middleware.RoleTrainer
	RoleUser    = middleware.RoleUser
)

// Account is a static login account, provided via process env on startup.
type Account struct {
	Username     string
	PasswordHash string
	Role         Role
}
