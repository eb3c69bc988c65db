// Package provider defines the raw input-state surface the poller and resolver
// consume, and the Win32 implementation of it.
package provider

import (
	"errors"
	"fmt"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/vk"
)

var (
	// ErrUnsupported is returned by New on platforms without a native provider.
	ErrUnsupported = errors.New("keyboard state provider not supported on this platform")
	// ErrNoForegroundWindow is returned when no window owns the keyboard focus.
	ErrNoForegroundWindow = errors.New("no foreground window")
)

// StateReader reads the per-key state sampled by the poller.
type StateReader interface {
	KeyState(code vk.Code) (vk.RawState, error)
}

// SweepStarter is implemented by state readers that need to know when a new
// sweep over the keycode space begins.
type SweepStarter interface {
	BeginSweep() error
}

// Translator turns a keycode into the character it types under the given
// modifier state. ok is false when the key produces no single character.
type Translator interface {
	Translate(code vk.Code, mods Modifiers) (r rune, ok bool, err error)
}

// Provider is the full platform input-state surface.
type Provider interface {
	StateReader
	Translator

	AsyncKeyState(code vk.Code) (vk.RawState, error)
	// KeyboardLayout returns the input layout of the calling thread.
	KeyboardLayout() (layout.ID, error)
	// ForegroundLayout returns the input layout of the thread owning the
	// foreground window.
	ForegroundLayout() (layout.ID, error)
}

// Modifiers is a snapshot of the modifier and layout state used to resolve a key.
type Modifiers struct {
	Shift bool
	Caps  bool
	Ctrl  bool
	// Layout is the foreground window's layout. Only read when needed.
	Layout layout.ID
	// InputLayout is the layout used for character translation.
	InputLayout layout.ID
}

// ReadModifiers snapshots Shift, CapsLock, Ctrl and the input layout. The
// foreground layout is left for the caller to fill in when it is needed.
func ReadModifiers(p Provider) (Modifiers, error) {
	var m Modifiers

	shift, err := p.AsyncKeyState(vk.Shift)
	if err != nil {
		return m, fmt.Errorf("read shift state: %w", err)
	}
	ctrl, err := p.AsyncKeyState(vk.Control)
	if err != nil {
		return m, fmt.Errorf("read ctrl state: %w", err)
	}
	caps, err := p.KeyState(vk.Capital)
	if err != nil {
		return m, fmt.Errorf("read capslock state: %w", err)
	}
	m.Shift = shift.IsAsyncDown()
	m.Ctrl = ctrl.IsAsyncDown()
	m.Caps = caps.IsToggled()

	if m.InputLayout, err = p.KeyboardLayout(); err != nil {
		return m, fmt.Errorf("read keyboard layout: %w", err)
	}
	return m, nil
}
