package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/puapi/internal/client/api"
	"github.com/iudanet/puapi/internal/client/auth"
	"github.com/iudanet/puapi/internal/client/cli"
	"github.com/iudanet/puapi/internal/client/iocli"
	"github.com/iudanet/puapi/internal/config"
	"github.com/iudanet/puapi/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env-file", "", "Path to .env file")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil).PrintUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	// Создаем API клиент
	apiClient, err := api.NewClient(cfg.APIConfig(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create API client: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(stdio, func(creds models.Credentials) (cli.SessionProvider, error) {
		provider, err := auth.NewExternalAPIProvider(apiClient, creds, cfg.AuthOptions(logger))
		if err != nil {
			return nil, err
		}
		return provider, nil
	})

	// Выполняем команду
	if err := app.Run(ctx, args[0], cfg.Credentials()); err != nil {
		if !errors.Is(err, cli.ErrUnknownCommand) {
			logger.Debug("command failed", "command", args[0], "error_kind", api.ErrorKind(err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Prosperous Universe session client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
