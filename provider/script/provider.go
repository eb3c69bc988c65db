package script

import (
	"unicode"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/provider"
	"github.com/Alia5/keypoll/vk"
)

// Provider replays a Script. It is not safe for concurrent use.
type Provider struct {
	frames    []Frame
	overrides map[vk.Code]keyChars

	index int
	held  int
	sweep int

	layout       layout.ID
	noForeground bool
	down         [vk.NumCodes]bool
	toggled      [vk.NumCodes]bool
	raw          map[vk.Code]vk.RawState
}

var (
	_ provider.Provider     = (*Provider)(nil)
	_ provider.SweepStarter = (*Provider)(nil)
)

// New returns a provider positioned before the first frame: every key reads
// as released until BeginSweep is called.
func New(s *Script) *Provider {
	p := &Provider{
		frames:    s.Frames,
		overrides: make(map[vk.Code]keyChars, len(s.Chars)),
		index:     -1,
		layout:    layout.ID(s.Layout),
		raw:       map[vk.Code]vk.RawState{},
	}
	if p.layout == 0 {
		p.layout = layout.EnglishUS
	}
	for _, c := range s.Chars {
		if c.Normal == "" {
			continue
		}
		n := []rune(c.Normal)[0]
		sh := n
		if c.Shifted != "" {
			sh = []rune(c.Shifted)[0]
		}
		p.overrides[vk.Code(c.Code)] = keyChars{n, sh}
	}
	return p
}

// Sweeps returns how many sweeps have started.
func (p *Provider) Sweeps() int {
	return p.sweep
}

// BeginSweep moves to the next frame, or stays on the current one while it is
// held. It returns ErrScriptEnded after the last frame.
func (p *Provider) BeginSweep() error {
	if p.index >= 0 && p.index < len(p.frames) && p.held < p.frames[p.index].Hold {
		p.held++
		p.sweep++
		return nil
	}
	if p.index+1 >= len(p.frames) {
		p.index = len(p.frames)
		return ErrScriptEnded
	}
	p.index++
	p.held = 0
	p.sweep++
	p.apply(p.frames[p.index])
	return nil
}

func (p *Provider) apply(f Frame) {
	p.down = [vk.NumCodes]bool{}
	p.toggled = [vk.NumCodes]bool{}
	clear(p.raw)
	for _, c := range f.Down {
		p.down[c] = true
	}
	for _, c := range f.Toggled {
		p.toggled[c] = true
	}
	for _, r := range f.Raw {
		p.raw[vk.Code(r.Code)] = vk.RawState(r.State)
	}
	if f.Layout != 0 {
		p.layout = layout.ID(f.Layout)
	}
	p.noForeground = f.NoForeground
}

func (p *Provider) KeyState(code vk.Code) (vk.RawState, error) {
	if r, ok := p.raw[code]; ok {
		return r, nil
	}
	if int(code) >= vk.NumCodes {
		return vk.StateUp, nil
	}
	switch {
	case p.down[code] && p.toggled[code]:
		return vk.StateDownToggled, nil
	case p.down[code]:
		return vk.StateDown, nil
	case p.toggled[code]:
		return vk.StateToggled, nil
	}
	return vk.StateUp, nil
}

func (p *Provider) AsyncKeyState(code vk.Code) (vk.RawState, error) {
	if int(code) < vk.NumCodes && p.down[code] {
		return vk.AsyncDown, nil
	}
	return vk.StateUp, nil
}

func (p *Provider) KeyboardLayout() (layout.ID, error) {
	return p.layout, nil
}

func (p *Provider) ForegroundLayout() (layout.ID, error) {
	if p.noForeground {
		return 0, provider.ErrNoForegroundWindow
	}
	return p.layout, nil
}

// Translate mimics ToAsciiEx: Ctrl turns letters into control characters,
// CapsLock flips Shift for letters only.
func (p *Provider) Translate(code vk.Code, mods provider.Modifiers) (rune, bool, error) {
	if mods.Ctrl {
		if code >= vk.KeyA && code <= vk.KeyZ {
			return rune(code - vk.KeyA + 1), true, nil
		}
		return 0, false, nil
	}

	kc, ok := p.overrides[code]
	if !ok {
		kc, ok = common[code]
	}
	if !ok {
		id := mods.InputLayout
		if id == 0 {
			id = p.layout
		}
		kc, ok = tableFor(id)[code]
	}
	if !ok {
		return 0, false, nil
	}

	shift := mods.Shift
	if mods.Caps && unicode.IsLetter(kc[0]) {
		shift = !shift
	}
	if shift {
		return kc[1], true, nil
	}
	return kc[0], true, nil
}
