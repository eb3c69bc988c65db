package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/keypoll/internal/log"
	"github.com/Alia5/keypoll/listener"
	"github.com/Alia5/keypoll/provider"
)

// Output selects which events are printed and how.
type Output struct {
	Events  string `help:"Transitions to print" enum:"press,release,both" default:"release" env:"KEYPOLL_EVENTS"`
	StopKey string `help:"Stop once this symbol is reported, e.g. Esc" env:"KEYPOLL_STOP_KEY"`
	Format  string `help:"Output format" enum:"text,json" default:"text" env:"KEYPOLL_FORMAT"`
}

// Listen prints key events from the native provider.
type Listen struct {
	Listener listener.Config `embed:""`
	Output   Output          `embed:""`
}

// Run is called by Kong when the listen command is executed.
func (l *Listen) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := provider.New()
	if err != nil {
		return fmt.Errorf("open keyboard state provider: %w", err)
	}
	logger.Info("Starting keypoll listener", "interval", l.Listener.Poll.Interval, "events", l.Output.Events)
	return runListener(ctx, p, l.Listener, l.Output, os.Stdout, logger, rawLogger)
}

func runListener(ctx context.Context, p provider.Provider, cfg listener.Config, out Output, w io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	lst := listener.New(p, cfg, logger, rawLogger)
	pr := newPrinter(w, out.Format, out.StopKey)
	switch out.Events {
	case "press":
		lst.OnPress = pr
	case "both":
		lst.OnPress = pr
		lst.OnRelease = pr
	default:
		lst.OnRelease = pr
	}

	err := lst.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Interrupted")
		return nil
	}
	return err
}
