// Package cli holds the start-up steps shared by the command entry points.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"syscall"

	"github.com/joho/godotenv"

	"expenses/internal/config"
	applog "expenses/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// A missing file is not an error; production sets real environment variables.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the logger described by cfg and installs it as the
// slog default.
func SetupLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := applog.New(w, applog.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: applog.ComponentApp,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Banner is the human-oriented start-up summary.
func Banner(cfg *config.Config) string {
	host := cfg.Host
	if host == "0.0.0.0" || host == "::" || host == "" {
		host = "localhost"
	}
	return fmt.Sprintf(
		"Expense tracker listening on http://%s\n  API:     http://%s/api/expenses\n  Backend: %s\n  Events:  %s",
		cfg.Addr(),
		net.JoinHostPort(host, cfg.Port),
		cfg.DataBackend,
		eventsStatus(cfg),
	)
}

func eventsStatus(cfg *config.Config) string {
	if cfg.AMQPURL == "" {
		return "disabled"
	}
	return "exchange " + cfg.AMQPExchange
}

// ListenError explains a failure to bind the server address.
func ListenError(addr string, err error) error {
	if errors.Is(err, syscall.EADDRINUSE) {
		return fmt.Errorf("port already in use: another process is listening on %s; stop it or set PORT to a free port: %w", addr, err)
	}
	return fmt.Errorf("listen on %s: %w", addr, err)
}

// Fatal logs err and exits with status 1.
func Fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
