package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/keypoll/internal/log"
	"github.com/Alia5/keypoll/listener"
	"github.com/Alia5/keypoll/provider/script"
)

// Replay prints key events produced by a frame script.
type Replay struct {
	Script   string          `arg:"" help:"Frame script (.yaml, .toml or .json)" type:"existingfile"`
	Listener listener.Config `embed:""`
	Output   Output          `embed:""`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.replay(ctx, logger, rawLogger)
}

func (r *Replay) replay(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	s, err := script.Load(r.Script)
	if err != nil {
		return err
	}
	logger.Debug("Loaded frame script", "path", r.Script, "frames", len(s.Frames))

	err = runListener(ctx, script.New(s), r.Listener, r.Output, os.Stdout, logger, rawLogger)
	if errors.Is(err, script.ErrScriptEnded) {
		return nil
	}
	return err
}
