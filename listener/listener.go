// Package listener turns polled key transitions into KeyEvents and hands them
// to the registered press and release handlers.
package listener

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Alia5/keypoll/internal/log"
	"github.com/Alia5/keypoll/poller"
	"github.com/Alia5/keypoll/provider"
	"github.com/Alia5/keypoll/resolver"
)

// Config bundles the poller and resolver settings.
type Config struct {
	Poll    poller.Config   `embed:"" prefix:"poll."`
	Resolve resolver.Config `embed:"" prefix:"resolve."`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Poll:    poller.DefaultConfig(),
		Resolve: resolver.DefaultConfig(),
	}
}

// Listener drives a poller over a provider and dispatches resolved events.
// Either handler may be nil; its transitions are still tracked but never
// resolved or dispatched.
type Listener struct {
	OnPress   Handler
	OnRelease Handler

	provider provider.Provider
	resolver *resolver.Resolver
	poller   *poller.Poller
	logger   *slog.Logger
}

// New returns a listener reading from p.
func New(p provider.Provider, cfg Config, logger *slog.Logger, raw log.RawLogger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{
		provider: p,
		resolver: resolver.New(cfg.Resolve),
		poller:   poller.New(p, cfg.Poll, logger, raw),
		logger:   logger,
	}
}

// Poller exposes the underlying poller, mainly for inspecting held keys.
func (l *Listener) Poller() *poller.Poller {
	return l.poller
}

// Run polls until a handler returns Stop, a handler or the provider fails, or
// ctx is done. A Stop returns nil.
func (l *Listener) Run(ctx context.Context) error {
	logger := l.logger.With("session", uuid.NewString())
	logger.Info("Listening for key events", "press", l.OnPress != nil, "release", l.OnRelease != nil)

	err := l.poller.Run(ctx, func(tr poller.Transition) (poller.Signal, error) {
		return l.dispatch(ctx, tr)
	})
	if err != nil {
		logger.Debug("Listener stopped", "error", err)
		return err
	}
	logger.Info("Listener stopped")
	return nil
}

func (l *Listener) dispatch(ctx context.Context, tr poller.Transition) (Signal, error) {
	h := l.OnPress
	if tr.Kind == poller.Release {
		h = l.OnRelease
	}
	if h == nil {
		return Continue, nil
	}

	ev, ok, err := l.Resolve(tr)
	if err != nil {
		return Stop, err
	}
	if !ok {
		return Continue, nil
	}
	return h.HandleKey(ctx, ev)
}

// Resolve builds the KeyEvent for a transition from the current modifier
// state. ok is false when the key has no symbol.
func (l *Listener) Resolve(tr poller.Transition) (KeyEvent, bool, error) {
	mods, err := provider.ReadModifiers(l.provider)
	if err != nil {
		return KeyEvent{}, false, err
	}
	if resolver.NeedsLayout(tr.Code, mods.Ctrl) {
		if mods.Layout, err = l.provider.ForegroundLayout(); err != nil {
			return KeyEvent{}, false, fmt.Errorf("read foreground layout: %w", err)
		}
	}

	sym, ok, err := l.resolver.Resolve(tr.Code, mods, l.provider)
	if err != nil || !ok {
		return KeyEvent{}, false, err
	}
	return KeyEvent{
		Symbol:  sym,
		Keycode: tr.Code,
		Shift:   mods.Shift,
		Caps:    mods.Caps,
		Kind:    tr.Kind,
		Repeat:  tr.Repeat,
	}, true, nil
}
