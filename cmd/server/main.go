package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iudanet/chipsync/internal/bootstrap"
	"github.com/iudanet/chipsync/internal/config"
	"github.com/iudanet/chipsync/internal/server"
	"github.com/iudanet/chipsync/internal/server/handlers"
	"github.com/iudanet/chipsync/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	f := config.NewFlagSet("chipsync-server")
	config.AddServerFlags(f)

	cfg, err := config.Load(f, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if showVersion, _ := f.GetBool("version"); showVersion {
		printVersion()
		return nil
	}

	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	logger, err := bootstrap.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Identities живут в собственной базе сервера
	db, err := sqlite.New(ctx, cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open server database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close server database", "error", err)
		}
	}()

	t, err := bootstrap.OpenTransport(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := t.Close(); err != nil {
			logger.Error("Failed to close transport", "error", err)
		}
	}()

	srv := server.New(server.Options{
		Logger:     logger,
		Transport:  t,
		Identities: db,
		DB:         db.DB(),
		JWT: handlers.JWTConfig{
			Secret:   []byte(cfg.Server.JWTSecret),
			TokenTTL: cfg.Server.TokenTTL,
		},
		Address:   cfg.Server.Address,
		RateLimit: cfg.Server.RateLimit,
	})

	logger.Info("chipsync server starting", "version", Version, "transport", cfg.Transport.Kind)
	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("chipsync server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
