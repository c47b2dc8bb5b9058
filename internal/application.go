package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/console"
	"github.com/rocketscienceinc/tictactoe-board/transport/tui"
)

type gameView interface {
	Run(ctx context.Context) error
}

// RunApp - runs the application.
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

	session := usecase.NewGameSession(logger, tictactoe.NewEngine())

	mode := selectUI(conf.UI, stdinIsTerminal())

	var view gameView
	switch mode {
	case config.UITerm:
		view = tui.New(logger, session, tui.ThemeFromConfig(conf.Theme), !conf.DisableMouse)
	default:
		view = console.New(logger, session, console.ThemeFromConfig(conf.Theme), os.Stdin, os.Stdout)
	}

	log.Info("Starting view", "ui", mode, "epoch", session.Epoch())

	if err := view.Run(ctx); err != nil {
		return fmt.Errorf("%s view error: %w", mode, err)
	}

	log.Info("View closed, shutting down", "status", session.Snapshot().Status.String())

	return nil
}

// selectUI - resolves "auto" to the terminal view when stdin is interactive.
func selectUI(mode string, interactive bool) string {
	if mode != config.UIAuto {
		return mode
	}

	if interactive {
		return config.UITerm
	}
	return config.UIConsole
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
