package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rodnney/biotech-x/internal/config"
	"github.com/rodnney/biotech-x/internal/server"
	"github.com/rodnney/biotech-x/pkg/logger"
)

// Main runs a service binary and returns its exit code. It loads a .env file
// when present, resolves configuration, starts the server and blocks until
// SIGINT or SIGTERM.
func Main(service config.Service, args []string) int {
	flags, err := Parse(service, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if flags.Help {
		flags.ShowHelp(os.Stdout)
		return 0
	}
	if flags.Version {
		flags.ShowVersion(os.Stdout)
		return 0
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadWithFlags(service, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := logger.InitFromConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	srv, err := newServer(cfg)
	if err != nil {
		logger.Errorf("Failed to create %s server: %v", service, err)
		return 1
	}

	logger.Infof("Starting %s on port %s", service, cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)
	if service == config.ServiceFrontend {
		logger.Infof("Status panel target: %s", cfg.Status.APIURL)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Errorf("Server failed: %v", err)
		return 1
	}

	logger.Infof("%s stopped", service)
	return 0
}

func newServer(cfg *config.Config) (*server.Server, error) {
	if cfg.Service == config.ServiceFrontend {
		return server.NewFrontend(cfg)
	}
	return server.NewAPI(cfg)
}
