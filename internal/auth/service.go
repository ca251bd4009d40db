package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/robmck/fitlife/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitlife-service-session||"
	tokensSetKey     = "fitlife-service-sessions"
)

type LoginSession struct {
	Token     string
	Role      Role
	CreatedAt time.Time
}

type Service struct {
	redisClient *redis.Client
	accounts    map[string]Account
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
	accounts []Account,
) *Service {
	accountsByUsername := make(map[string]Account, len(accounts))
	for _, acc := range accounts {
		accountsByUsername[acc.Username] = acc
	}
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		accounts:       accountsByUsername,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login checks the credentials and opens a new session, returning its token.
// A wrong username and a wrong password are indistinguishable to the caller.
func (as *Service) Login(ctx context.Context, username, password string, createdAt time.Time) (*LoginSession, error) {
	account, ok := as.accounts[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !pkg.CheckPasswordHash(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	sessionVal := fmt.Sprintf("%s||%d", account.Role, createdAt.Unix())
	if err := as.redisClient.Set(ctx, sessionKey, sessionVal, 0).Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, err
	}

	return &LoginSession{
		Token:     token,
		Role:      account.Role,
		CreatedAt: createdAt,
	}, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	_, createdAtUnix, err := parseSessionValue(cmd.Val())
	if err != nil {
		return false, err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.Get(ctx, sessionKey)
		if err := cmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAtUnix, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAt := time.Unix(createdAtUnix, 0)
		if time.Since(createdAt) > as.ttl {
			log.Warnf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

// parseSessionValue splits "role||createdAtUnix".
func parseSessionValue(val string) (Role, int64, error) {
	parts := strings.SplitN(val, "||", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed session value: %q", val)
	}
	role := Role(parts[0])
	if !role.Valid() {
		return "", 0, fmt.Errorf("malformed session role: %q", parts[0])
	}
	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed session created at: %w", err)
	}
	return role, createdAtUnix, nil
}
