package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/vk"
)

// Symbols lists key names and dead-key compositions.
type Symbols struct {
	DeadKeys bool `help:"Also list dead-key compositions per layout" default:"true" negatable:""`
}

// Run is called by Kong when the symbols command is executed.
func (s *Symbols) Run() error {
	return s.write(os.Stdout)
}

func (s *Symbols) write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "VK    HEX   NAME"); err != nil {
		return err
	}
	for _, c := range vk.NamedCodes() {
		name, _ := vk.Name(c)
		if _, err := fmt.Fprintf(w, "%-5d 0x%02x  %s\n", c, uint8(c), name); err != nil {
			return err
		}
	}
	if !s.DeadKeys {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\nLAYOUT  VK    NORMAL  SHIFTED"); err != nil {
		return err
	}
	for _, id := range []layout.ID{layout.EnglishUS, layout.Russian} {
		for _, c := range []vk.Code{vk.Oem3, vk.Oem7} {
			n, _ := layout.Compose(id, c, false)
			sh, _ := layout.Compose(id, c, true)
			_, err := fmt.Fprintf(w, "%s %-5d %s %s\n",
				runewidth.FillRight(id.String(), 7), c,
				runewidth.FillRight(string(n), 7), string(sh))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
