// Package script implements a provider.Provider that replays keyboard state
// from a frame script instead of reading it from the operating system.
//
// A script is a list of frames. Each frame describes the keys held down during
// one sweep of the poller:
//
//	layout: 1033
//	frames:
//	  - down: [16, 65]   # Shift+A
//	  - down: []
//	  - down: [20]
//	    toggled: [20]    # CapsLock pressed and now on
//	    hold: 2          # repeat this frame for two more sweeps
package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/keypoll/vk"
)

// ErrScriptEnded is returned by BeginSweep once every frame has been replayed.
var ErrScriptEnded = errors.New("script ended")

// Script is the decoded form of a frame script.
type Script struct {
	// Layout is the initial layout id for both input and foreground window.
	Layout int `json:"layout" yaml:"layout" toml:"layout"`
	// Chars overrides the built-in character tables.
	Chars  []CharMapping `json:"chars,omitempty" yaml:"chars,omitempty" toml:"chars,omitempty"`
	Frames []Frame       `json:"frames" yaml:"frames" toml:"frames"`
}

// CharMapping overrides the characters typed by a key.
type CharMapping struct {
	Code    int    `json:"code" yaml:"code" toml:"code"`
	Normal  string `json:"normal" yaml:"normal" toml:"normal"`
	Shifted string `json:"shifted,omitempty" yaml:"shifted,omitempty" toml:"shifted,omitempty"`
}

// Frame is the keyboard state during one sweep.
type Frame struct {
	Down    []int       `json:"down,omitempty" yaml:"down,omitempty" toml:"down,omitempty"`
	Toggled []int       `json:"toggled,omitempty" yaml:"toggled,omitempty" toml:"toggled,omitempty"`
	Raw     []RawSample `json:"raw,omitempty" yaml:"raw,omitempty" toml:"raw,omitempty"`
	// Layout switches input and foreground layout from this frame on.
	Layout int `json:"layout,omitempty" yaml:"layout,omitempty" toml:"layout,omitempty"`
	// NoForeground simulates the desktop having focus.
	NoForeground bool `json:"noForeground,omitempty" yaml:"noForeground,omitempty" toml:"noForeground,omitempty"`
	// Hold repeats the frame for this many additional sweeps.
	Hold int `json:"hold,omitempty" yaml:"hold,omitempty" toml:"hold,omitempty"`
}

// RawSample forces the GetKeyState value reported for a code.
type RawSample struct {
	Code  int `json:"code" yaml:"code" toml:"code"`
	State int `json:"state" yaml:"state" toml:"state"`
}

// Load reads a script file. The format is chosen by extension: .yaml/.yml,
// .toml, anything else is parsed as JSON.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script in the given format (json, yaml, yml or toml).
func Parse(data []byte, format string) (*Script, error) {
	var s Script
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &s)
	case "toml":
		err = toml.Unmarshal(data, &s)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	}
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks codes, layouts and raw states are within range.
func (s *Script) Validate() error {
	if err := checkLayout(s.Layout); err != nil {
		return err
	}
	for i, c := range s.Chars {
		if err := checkCode(c.Code); err != nil {
			return fmt.Errorf("chars[%d]: %w", i, err)
		}
		if len([]rune(c.Normal)) != 1 {
			return fmt.Errorf("chars[%d]: normal must be a single character", i)
		}
		if c.Shifted != "" && len([]rune(c.Shifted)) != 1 {
			return fmt.Errorf("chars[%d]: shifted must be a single character", i)
		}
	}
	for i, f := range s.Frames {
		for _, c := range append(append([]int{}, f.Down...), f.Toggled...) {
			if err := checkCode(c); err != nil {
				return fmt.Errorf("frames[%d]: %w", i, err)
			}
		}
		for _, r := range f.Raw {
			if err := checkCode(r.Code); err != nil {
				return fmt.Errorf("frames[%d]: %w", i, err)
			}
			if r.State < -32768 || r.State > 32767 {
				return fmt.Errorf("frames[%d]: raw state %d out of range", i, r.State)
			}
		}
		if err := checkLayout(f.Layout); err != nil {
			return fmt.Errorf("frames[%d]: %w", i, err)
		}
		if f.Hold < 0 {
			return fmt.Errorf("frames[%d]: negative hold", i)
		}
	}
	return nil
}

func checkCode(c int) error {
	if c < 0 || c >= vk.NumCodes {
		return fmt.Errorf("keycode %d out of range", c)
	}
	return nil
}

func checkLayout(id int) error {
	if id < 0 || id > 0xFFFF {
		return fmt.Errorf("layout id %d out of range", id)
	}
	return nil
}
