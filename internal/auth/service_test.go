package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	testUsername     = "testadmin"
	testPassword     = "testpass"
	testPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i" // testpass
	testAccounts     = []Account{
		{
			Username:     testUsername,
			PasswordHash: testPasswordHash,
			Role:         RoleAdmin,
		},
	}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestAuthService_Login(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewService(time.Hour, db, testAccounts)
	require.NotNil(t, authService)
	assert.NotNil(t, authService.redisClient)
	assert.Equal(t, time.Hour, authService.ttl)

	testToken := "test_token"
	authService.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken
	sessionVal := fmt.Sprintf("%s||%d", RoleAdmin, now.Unix())
	mock.ExpectSet(sessionKey, sessionVal, 0).SetVal(sessionVal)
	mock.ExpectSAdd(tokensSetKey, testToken).SetVal(1)

	session, err := authService.Login(context.Background(), testUsername, testPassword, now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, testToken, session.Token)
	assert.Equal(t, RoleAdmin, session.Role)

	// wrong password
	session, err = authService.Login(context.Background(), testUsername, "invalid_pass", now)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, session)

	// unknown user
	session, err = authService.Login(context.Background(), "nobody", testPassword, now)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestAuthService_Logout(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewService(time.Hour, db, testAccounts)

	testToken := "test_token"
	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken
	sessionVal := fmt.Sprintf("%s||%d", RoleAdmin, now.Unix())

	mock.ExpectGet(sessionKey).SetVal(sessionVal)
	mock.ExpectDel(sessionKey).SetVal(1)
	mock.ExpectSRem(tokensSetKey, testToken).SetVal(1)

	loggedOut, err := authService.Logout(context.Background(), testToken)
	require.NoError(t, err)
	assert.True(t, loggedOut)
}

func TestAuthService_ScanAndClean(t *testing.T) {
	ttl := time.Hour
	now := time.Now()
	then := now.Add(-2 * time.Hour)

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewService(ttl, rdb, testAccounts)
	require.NotNil(t, authService)

	freshToken := "fresh_token"
	staleToken := "stale_token"
	mock.ExpectSMembers(tokensSetKey).SetVal([]string{freshToken, staleToken})
	mock.ExpectGet(sessionKeyPrefix + freshToken).
		SetVal(fmt.Sprintf("%s||%d", RoleUser, now.Unix()))
	mock.ExpectGet(sessionKeyPrefix + staleToken).
		SetVal(fmt.Sprintf("%s||%d", RoleUser, then.Unix()))
	mock.ExpectDel(sessionKeyPrefix + staleToken).SetVal(1)
	mock.ExpectSRem(tokensSetKey, staleToken).SetVal(1)

	authService.ScanAndClean(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseSessionValue(t *testing.T) {
	role, createdAt, err := parseSessionValue("admin||1700000000")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
	assert.Equal(t, int64(1700000000), createdAt)

	_, _, err = parseSessionValue("1700000000")
	assert.Error(t, err)
	_, _, err = parseSessionValue("overlord||1700000000")
	assert.Error(t, err)
	_, _, err = parseSessionValue("admin||not-a-number")
	assert.Error(t, err)
}
