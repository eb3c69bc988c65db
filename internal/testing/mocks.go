package testing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/listener"
	"github.com/Alia5/keypoll/provider/script"
	"github.com/Alia5/keypoll/vk"
)

// NewProvider returns a scripted provider replaying frames on the given layout.
func NewProvider(t *testing.T, id layout.ID, frames ...script.Frame) *script.Provider {
	t.Helper()
	s := &script.Script{Layout: int(id), Frames: frames}
	require.NoError(t, s.Validate())
	return script.New(s)
}

// Down returns a frame with the given keys held.
func Down(codes ...vk.Code) script.Frame {
	f := script.Frame{Down: []int{}}
	for _, c := range codes {
		f.Down = append(f.Down, int(c))
	}
	return f
}

// Taps returns a press frame followed by a release frame for each code.
func Taps(codes ...vk.Code) []script.Frame {
	var out []script.Frame
	for _, c := range codes {
		out = append(out, Down(c), Down())
	}
	return out
}

// FailingReader reports every key as released and fails on one code.
type FailingReader struct {
	FailAt vk.Code
	Err    error
}

func (f *FailingReader) KeyState(code vk.Code) (vk.RawState, error) {
	if code == f.FailAt {
		return 0, f.Err
	}
	return vk.StateUp, nil
}

// Recorder is a handler collecting every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []listener.KeyEvent
	// StopAfter makes the recorder return Stop on the n-th event when > 0.
	StopAfter int
}

func (r *Recorder) HandleKey(_ context.Context, ev listener.KeyEvent) (listener.Signal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	if r.StopAfter > 0 && len(r.events) >= r.StopAfter {
		return listener.Stop, nil
	}
	return listener.Continue, nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []listener.KeyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]listener.KeyEvent(nil), r.events...)
}

// Symbols returns the recorded symbols in order.
func (r *Recorder) Symbols() []string {
	var out []string
	for _, ev := range r.Events() {
		out = append(out, ev.Symbol)
	}
	return out
}
