// Package poller samples the state of every virtual key at a fixed interval and
// reports press and release transitions.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/keypoll/internal/log"
	"github.com/Alia5/keypoll/provider"
	"github.com/Alia5/keypoll/vk"
)

// Kind is the direction of a transition.
type Kind int

const (
	Press Kind = iota
	Release
)

func (k Kind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// Transition is a detected change of a key between two sweeps.
type Transition struct {
	Code vk.Code
	Kind Kind
	Raw  vk.RawState
	// Repeat is set on a press re-emitted for a key that stayed down.
	Repeat bool
}

// Signal tells the poller whether to keep going after a transition.
type Signal int

const (
	Continue Signal = iota
	Stop
)

func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// Func receives every transition in sweep order.
type Func func(Transition) (Signal, error)

// Config controls the sampling loop.
type Config struct {
	Interval time.Duration `help:"Delay before each sweep over the keycode space" default:"15ms" env:"KEYPOLL_INTERVAL"`
	Repeat   bool          `help:"Re-emit press events while a key is held and its raw state changes" env:"KEYPOLL_REPEAT"`
}

// DefaultConfig returns the reference sampling configuration.
func DefaultConfig() Config {
	return Config{Interval: 15 * time.Millisecond}
}

// Poller owns the transition table for one state reader. It is not safe for
// concurrent use.
type Poller struct {
	cfg    Config
	reader provider.StateReader
	table  Table
	logger *slog.Logger
	raw    log.RawLogger
}

// New returns a poller reading from r.
func New(r provider.StateReader, cfg Config, logger *slog.Logger, raw log.RawLogger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Poller{
		cfg:    cfg,
		reader: r,
		logger: logger,
		raw:    raw,
	}
}

// Table returns the poller's view of held keys.
func (p *Poller) Table() *Table {
	return &p.table
}

// Run sweeps until fn returns Stop, fn or the reader fails, or ctx is done.
// Keys held for less than one interval may be missed.
func (p *Poller) Run(ctx context.Context, fn Func) error {
	p.logger.Debug("Polling keyboard state", "interval", p.cfg.Interval, "repeat", p.cfg.Repeat)

	timer := time.NewTimer(p.cfg.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		sig, err := p.Sweep(fn)
		if err != nil {
			return err
		}
		if sig == Stop {
			p.logger.Debug("Polling stopped by handler")
			return nil
		}
		timer.Reset(p.cfg.Interval)
	}
}

// Sweep runs one pass over the keycode space. It returns as soon as fn
// returns Stop or an error, leaving the remaining codes unexamined.
func (p *Poller) Sweep(fn Func) (Signal, error) {
	if s, ok := p.reader.(provider.SweepStarter); ok {
		if err := s.BeginSweep(); err != nil {
			return Stop, fmt.Errorf("begin sweep: %w", err)
		}
	}

	for i := 0; i < vk.NumCodes; i++ {
		code := vk.Code(i)
		state, err := p.reader.KeyState(code)
		if err != nil {
			return Stop, fmt.Errorf("read state of vk %d: %w", code, err)
		}

		prev, tracked := p.table.Tracked(code)
		var tr Transition
		switch {
		case state.IsDown() && !tracked:
			p.table.track(code, state)
			tr = Transition{Code: code, Kind: Press, Raw: state}
		case state.IsDown() && p.cfg.Repeat && prev != state:
			p.table.track(code, state)
			tr = Transition{Code: code, Kind: Press, Raw: state, Repeat: true}
		case !state.IsDown() && tracked:
			p.table.untrack(code)
			tr = Transition{Code: code, Kind: Release, Raw: state}
		default:
			continue
		}

		p.raw.Log(tr.Kind == Press, code, state)
		sig, err := fn(tr)
		if err != nil {
			return Stop, err
		}
		if sig == Stop {
			return Stop, nil
		}
	}
	return Continue, nil
}
