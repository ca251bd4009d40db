package auth

import "context"

// LoginTestChecker is a Checker for unit tests, no redis involved.
type LoginTestChecker struct {
	Sessions map[string]Role
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: make(map[string]Role),
	}
}

func (tc *LoginTestChecker) RoleOf(_ context.Context, token string) (Role, error) {
	role, ok := tc.Sessions[token]
	if !ok {
		return "", ErrNotLoggedIn
	}
	return role, nil
}
