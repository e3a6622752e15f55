package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Shardlands_Go/internal/bootstrap"
	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/console"
	"github.com/osse101/Shardlands_Go/internal/database"
	"github.com/osse101/Shardlands_Go/internal/profile"
	"github.com/osse101/Shardlands_Go/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shardlands: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	content, err := bootstrap.LoadContent(bootstrap.DefaultContentPaths())
	if err != nil {
		return err
	}

	bus, deadLetters, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		deadLetters.Close()
		return err
	}

	profiles := profile.NewService(repos.Profile, content.Forge, bus)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Profiles:     profiles,
			Repositories: repos,
			DeadLetters:  deadLetters,
		})
	}()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Recorder: profiles,
	}); err != nil {
		return err
	}

	game := console.New(os.Stdin, os.Stdout, profiles, content.RunDeps(cfg, bus))

	g, gctx := errgroup.WithContext(ctx)

	// The session ending stops everything else.
	g.Go(func() error {
		defer stop()
		err := game.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if cfg.StatusEnabled() {
		var pool database.Pool
		if repos.Pool != nil {
			pool = repos.Pool
		}
		srv := server.NewServer(cfg.StatusPort, cfg.StatusAPIKey, profiles, pool)

		g.Go(func() error {
			if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Stop(stopCtx)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Shardlands exited with error", "error", err)
		return err
	}
	return nil
}
