package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Alia5/keypoll/listener"
)

const symbolColumn = 12

// printer writes one line per key event and stops on the configured key.
type printer struct {
	w       io.Writer
	json    bool
	stopKey string
	styled  bool

	charStyle lipgloss.Style
	nameStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

type eventJSON struct {
	Kind    string `json:"kind"`
	Symbol  string `json:"symbol"`
	Keycode uint8  `json:"keycode"`
	Shift   bool   `json:"shift"`
	Caps    bool   `json:"caps"`
	Repeat  bool   `json:"repeat,omitempty"`
}

func newPrinter(w io.Writer, format, stopKey string) *printer {
	p := &printer{
		w:         w,
		json:      format == "json",
		stopKey:   stopKey,
		charStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		nameStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dimStyle:  lipgloss.NewStyle().Faint(true),
	}
	if f, ok := w.(*os.File); ok && !p.json {
		p.styled = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *printer) HandleKey(_ context.Context, ev listener.KeyEvent) (listener.Signal, error) {
	var err error
	if p.json {
		err = json.NewEncoder(p.w).Encode(eventJSON{
			Kind:    ev.Kind.String(),
			Symbol:  ev.Symbol,
			Keycode: uint8(ev.Keycode),
			Shift:   ev.Shift,
			Caps:    ev.Caps,
			Repeat:  ev.Repeat,
		})
	} else {
		_, err = fmt.Fprintln(p.w, p.line(ev))
	}
	if err != nil {
		return listener.Stop, fmt.Errorf("write event: %w", err)
	}

	if p.stopKey != "" && ev.Symbol == p.stopKey {
		return listener.Stop, nil
	}
	return listener.Continue, nil
}

func (p *printer) line(ev listener.KeyEvent) string {
	sym := ev.Symbol
	if ev.IsPrintable() {
		sym = strconv.Quote(sym)
	}
	sym = runewidth.FillRight(sym, symbolColumn)
	kind := fmt.Sprintf("%-7s", ev.Kind)
	meta := fmt.Sprintf("vk=%-3d shift=%-5t caps=%t", ev.Keycode, ev.Shift, ev.Caps)
	if ev.Repeat {
		meta += " repeat"
	}

	if p.styled {
		style := p.nameStyle
		if ev.IsPrintable() {
			style = p.charStyle
		}
		return p.dimStyle.Render(kind) + " " + style.Render(sym) + " " + p.dimStyle.Render(meta)
	}
	return kind + " " + sym + " " + meta
}
