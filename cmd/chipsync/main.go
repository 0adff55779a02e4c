package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iudanet/chipsync/internal/bootstrap"
	"github.com/iudanet/chipsync/internal/client/cli"
	"github.com/iudanet/chipsync/internal/client/iocli"
	"github.com/iudanet/chipsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	f := config.NewFlagSet("chipsync")
	config.AddClientFlags(f)
	// Флаги только до команды: аргументы save могут начинаться с '-'
	f.SetInterspersed(false)

	cfg, err := config.Load(f, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := bootstrap.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	io := iocli.NewStdio()
	opts := cli.Options{
		InviteBaseURL: cfg.Client.InviteBaseURL,
		Transport:     cfg.Transport.Kind,
		Config: func() (string, error) {
			var b strings.Builder
			if err := cfg.WriteTOML(&b); err != nil {
				return "", err
			}
			return b.String(), nil
		},
		Build: cli.BuildInfo{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit},
	}

	command, rest := "", f.Args()
	if showVersion, _ := f.GetBool("version"); showVersion {
		command = "version"
	} else if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	// Эти команды не открывают базы данных
	switch command {
	case "":
		cli.New(io, nil, nil, nil, logger, opts).PrintUsage()
		return 1
	case "version", "help", "config":
		if err := cli.New(io, nil, nil, nil, logger, opts).Run(context.Background(), command, rest); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := bootstrap.OpenClient(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close client", "error", err)
		}
	}()

	c := cli.New(io, client.Manager, client.Store, client.Identity, logger, opts)
	if err := c.Run(ctx, command, rest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
