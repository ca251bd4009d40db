package auth

import "github.com/robmck/fitlife/internal/middleware"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a session token to the role it was opened with.
// Expired or unknown tokens fail with ErrNotLoggedIn.
type Checker = middleware.Checker
