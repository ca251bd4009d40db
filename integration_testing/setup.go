package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/robmck/fitlife/internal"
	"github.com/robmck/fitlife/internal/auth"
	"github.com/robmck/fitlife/internal/config"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testAdminUsername = "testadmin"
	testUserUsername  = "testuser"
	// bcrypt of "testpass"
	testPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i"
	testPassword     = "testpass"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:      cfg,
			VersionInfo: "test-version-info",
			Accounts: []auth.Account{
				{
					Username:     testAdminUsername,
					PasswordHash: testPasswordHash,
					Role:         auth.RoleAdmin,
				},
				{
					Username:     testUserUsername,
					PasswordHash: testPasswordHash,
					Role:         auth.RoleUser,
				},
			},
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to create server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              "fitlife_db",
		LoginRateLimitAllowedPerMin: 100,
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "2112",
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=fitlife_db",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fitlife_db?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	if err := db.Ping(); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.users
(
    user_id SERIAL PRIMARY KEY,
    email   TEXT NOT NULL UNIQUE,
    name    TEXT NOT NULL
);

CREATE TABLE public.food_items
(
    food_id   INTEGER PRIMARY KEY,
    food_name TEXT    NOT NULL,
    calories  INTEGER NOT NULL
);

CREATE TABLE public.support_tickets
(
    ticket_id SERIAL PRIMARY KEY,
    user_id   INTEGER NOT NULL,
    subject   TEXT    NOT NULL,
    status    TEXT    NOT NULL DEFAULT 'open'
);

CREATE TABLE public.ticket_employees
(
    ticket_id   INTEGER NOT NULL REFERENCES support_tickets (ticket_id),
    employee_id INTEGER NOT NULL
);

CREATE TABLE public.food_log
(
    log_id    INTEGER PRIMARY KEY,
    user_id   INTEGER     NOT NULL,
    date      TIMESTAMPTZ NOT NULL,
    food_id   INTEGER     NOT NULL,
    calories  INTEGER     NOT NULL,
    meal_type TEXT        NOT NULL,
    protein   INTEGER     NOT NULL DEFAULT 0,
    carbs     INTEGER     NOT NULL DEFAULT 0,
    fats      INTEGER     NOT NULL DEFAULT 0
);

CREATE TABLE public.mood_log
(
    log_id  INTEGER PRIMARY KEY,
    user_id INTEGER     NOT NULL,
    date    TIMESTAMPTZ NOT NULL,
    mood    TEXT        NOT NULL
);

CREATE TABLE public.sleep_log
(
    log_id         INTEGER PRIMARY KEY,
    user_id        INTEGER          NOT NULL,
    date           TIMESTAMPTZ      NOT NULL,
    sleep_duration DOUBLE PRECISION NOT NULL,
    sleep_quality  INTEGER          NOT NULL
);

CREATE TABLE public.workout_log
(
    log_id          INTEGER PRIMARY KEY,
    user_id         INTEGER          NOT NULL,
    date            TIMESTAMPTZ      NOT NULL,
    exercise_type   TEXT             NOT NULL,
    duration        INTEGER          NOT NULL,
    calories_burned INTEGER          NOT NULL DEFAULT 0,
    trainer_notes   TEXT             NOT NULL DEFAULT '',
    set_count       INTEGER          NOT NULL DEFAULT 0,
    reps_in_set     INTEGER          NOT NULL DEFAULT 0,
    weight_used     DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE public.heart_rate_log
(
    log_id         INTEGER PRIMARY KEY,
    user_id        INTEGER     NOT NULL,
    date           TIMESTAMPTZ NOT NULL,
    avg_heart_rate INTEGER     NOT NULL
);
`
