package listener

import (
	"fmt"
	"strconv"

	"github.com/Alia5/keypoll/poller"
	"github.com/Alia5/keypoll/vk"
)

// KeyEvent is one resolved key interaction.
type KeyEvent struct {
	Symbol  string // printable character or key name, never empty
	Keycode vk.Code
	Shift   bool // Shift held when the key was resolved
	Caps    bool // CapsLock on when the key was resolved
	Kind    poller.Kind
	Repeat  bool
}

// IsPrintable reports whether Symbol is a single character rather than a key name.
func (e KeyEvent) IsPrintable() bool {
	return len([]rune(e.Symbol)) == 1
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("KeyEvent{Key: %s, Keycode: %d, Shift: %t, Caps: %t}",
		strconv.Quote(e.Symbol), e.Keycode, e.Shift, e.Caps)
}
