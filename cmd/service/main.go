package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/sethvargo/go-envconfig"

	"github.com/robmck/fitlife/internal"
	"github.com/robmck/fitlife/internal/auth"
	"github.com/robmck/fitlife/internal/config"
	"github.com/robmck/fitlife/internal/logging"
	"github.com/robmck/fitlife/pkg"
)

// secrets come from the process env, never from the TOML config
type secrets struct {
	SentryDSN     string `env:"SENTRY_DSN"`
	RedisPassword string `env:"FITLIFE_REDIS_PASS"`

	AdminUsername     string `env:"FITLIFE_ADMIN_USERNAME"`
	AdminPasswordHash string `env:"FITLIFE_ADMIN_PASSWORD_HASH"`

	TrainerUsername     string `env:"FITLIFE_TRAINER_USERNAME"`
	TrainerPasswordHash string `env:"FITLIFE_TRAINER_PASSWORD_HASH"`

	UserUsername     string `env:"FITLIFE_USER_USERNAME"`
	UserPasswordHash string `env:"FITLIFE_USER_PASSWORD_HASH"`

	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED"`
	HoneycombApiKey  string `env:"HONEYCOMB_API_KEY"`
}

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sec secrets
	if err := envconfig.Process(ctx, &sec); err != nil {
		log.Fatalf("process env secrets: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.SentryDSN,
		SentryServerName: "fitlife-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if sec.AdminUsername == "" || sec.AdminPasswordHash == "" {
		log.Errorf("admin account not set, use FITLIFE_ADMIN_USERNAME and FITLIFE_ADMIN_PASSWORD_HASH")
	}
	if sec.RedisPassword == "" {
		log.Errorf("redis password not set, use FITLIFE_REDIS_PASS")
	}
	if sec.HoneycombEnabled {
		if sec.HoneycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	var accounts []auth.Account
	if sec.AdminUsername != "" {
		accounts = append(accounts, auth.Account{
			Username:     sec.AdminUsername,
			PasswordHash: sec.AdminPasswordHash,
			Role:         auth.RoleAdmin,
		})
	}
	if sec.TrainerUsername != "" {
		accounts = append(accounts, auth.Account{
			Username:     sec.TrainerUsername,
			PasswordHash: sec.TrainerPasswordHash,
			Role:         auth.RoleTrainer,
		})
	}
	if sec.UserUsername != "" {
		accounts = append(accounts, auth.Account{
			Username:     sec.UserUsername,
			PasswordHash: sec.UserPasswordHash,
			Role:         auth.RoleUser,
		})
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			Accounts:                accounts,
			RedisPassword:           sec.RedisPassword,
			HoneycombTracingEnabled: sec.HoneycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
