// Package resolver decides which symbol a transitioning key reports: a
// printable character, a key name, or nothing.
package resolver

import (
	"fmt"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/provider"
	"github.com/Alia5/keypoll/vk"
)

// CtrlSymbol is reported for the Ctrl key itself.
const CtrlSymbol = "Ctrl"

// Config controls which translated characters count as printable.
type Config struct {
	Symbols    string `help:"Non-alphanumeric characters reported as printable output" default:"${default_symbols}" env:"KEYPOLL_SYMBOLS"`
	ExtraChars string `help:"Additional characters reported as printable output" env:"KEYPOLL_EXTRA_CHARS"`
}

// DefaultConfig returns the reference allow-list configuration.
func DefaultConfig() Config {
	return Config{Symbols: layout.DefaultSymbols}
}

// Resolver maps keycodes to symbols. It holds no mutable state.
type Resolver struct {
	allow layout.AllowList
}

// New returns a resolver for cfg.
func New(cfg Config) *Resolver {
	return &Resolver{allow: layout.NewAllowList(cfg.Symbols + cfg.ExtraChars)}
}

// NeedsLayout reports whether resolving code consults the foreground layout.
func NeedsLayout(code vk.Code, ctrl bool) bool {
	return !ctrl && layout.IsDeadKey(code)
}

// Resolve returns the symbol for code under mods. ok is false when the key
// should not be reported. tr is only called when neither the Ctrl rule nor
// dead-key composition applies.
func (r *Resolver) Resolve(code vk.Code, mods provider.Modifiers, tr provider.Translator) (string, bool, error) {
	if code == vk.Control {
		return CtrlSymbol, true, nil
	}

	if NeedsLayout(code, mods.Ctrl) {
		// CapsLock inverts Shift on the dead-key positions.
		shift := mods.Shift != mods.Caps
		if c, ok := layout.Compose(mods.Layout, code, shift); ok {
			return string(c), true, nil
		}
	}

	ch, ok, err := tr.Translate(code, mods)
	if err != nil {
		return "", false, fmt.Errorf("translate vk %d: %w", code, err)
	}
	if ok && r.allow.Allows(ch) {
		return string(ch), true, nil
	}

	if mods.Ctrl {
		return "", false, nil
	}
	name, ok := vk.Name(code)
	return name, ok, nil
}
