package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/keypoll/vk"
)

// RawLogger traces raw key state transitions.
type RawLogger interface {
	Log(down bool, code vk.Code, raw vk.RawState)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line transition trace with timestamp, keycode and the raw
// GetKeyState value in hex.
func (r *rawLogger) Log(down bool, code vk.Code, raw vk.RawState) {
	if r.w == nil {
		return
	}

	dir := "UP  "
	if down {
		dir = "DOWN"
	}

	line := fmt.Sprintf("%s %s vk: 0x%02x (%d), raw: %s\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		dir,
		uint8(code),
		uint8(code),
		raw.Hex())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
