package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/syntara-client/cmd/syntara/config"
	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a, err := newApp(ctx, cfg, &logger, os.Stdout)
	if err != nil {
		cancel()
		logger.Fatal().
			Err(err).
			Msg("can't start syntara")
	}

	err = run(ctx, a, os.Args[1:])

	if closeErr := a.Close(); closeErr != nil {
		logger.Error().
			Err(closeErr).
			Msg("can't close connections")
	}
	cancel()

	if err != nil {
		logger.Debug().
			Err(err).
			Msg("command failed")
		fmt.Fprintln(os.Stderr, commandMessage(err))
		os.Exit(1)
	}
}

// run executes command line args. Session rejected by backend is dropped locally.
// Rejected login keeps current session, 401 there means wrong credentials.
func run(ctx context.Context, a *app, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.out)

	cmd, err := root.ExecuteContextC(ctx)
	if cmd != nil && cmd.Name() == "login" {
		return err
	}

	if errors.Is(err, api.ErrSessionExpired) && a.store.IsLoggedIn() {
		if logoutErr := a.store.Logout(ctx); logoutErr != nil {
			a.logger.Error().
				Err(logoutErr).
				Msg("can't drop expired session")
		}
	}

	return err
}
