package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gomoku-console/internal/config"
	"github.com/rocketscienceinc/gomoku-console/internal/repository"
	"github.com/rocketscienceinc/gomoku-console/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-console/internal/transport/console"
	"github.com/rocketscienceinc/gomoku-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// shutdownGrace bounds how long a cancelled app waits for the game to stop
// before storage is closed under it.
const shutdownGrace = 2 * time.Second

// RunApp - runs the console game on stdin/stdout until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires storage, console and game manager, then plays until done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var matchRepo repository.MatchRepository
	if conf.Scoreboard.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage)
		log.Info("Scoreboard enabled", "addr", conf.Redis.GetRedisAddr())
	}

	ui := console.New(in, out)
	manager := usecase.NewGameManager(logger, ui, matchRepo, conf.Game, nil)

	// the console blocks on input; run it aside so a signal still ends the app
	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- manager.Run(ctx)
	}()

	select {
	case err := <-gameErrCh:
		if errors.Is(err, console.ErrNoInput) {
			log.Info("Input closed, shutting down")
			return nil
		}

		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}

		log.Info("Player quit")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		select {
		case <-gameErrCh:
		case <-time.After(shutdownGrace):
			log.Warn("Game did not stop in time", "grace", shutdownGrace)
		}

		return nil
	}
}
