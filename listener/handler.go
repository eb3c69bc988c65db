package listener

import (
	"context"

	"github.com/Alia5/keypoll/poller"
)

// Signal is a handler's decision to continue or stop listening.
type Signal = poller.Signal

const (
	Continue = poller.Continue
	Stop     = poller.Stop
)

// Handler consumes key events. The listener never calls a handler again
// before the previous call has returned.
type Handler interface {
	HandleKey(ctx context.Context, ev KeyEvent) (Signal, error)
}

// HandlerFunc is a synchronous Handler.
type HandlerFunc func(ctx context.Context, ev KeyEvent) (Signal, error)

func (f HandlerFunc) HandleKey(ctx context.Context, ev KeyEvent) (Signal, error) {
	return f(ctx, ev)
}

// Result is the outcome of an asynchronous handler call.
type Result struct {
	Signal Signal
	Err    error
}

// AsyncFunc is a Handler that completes on a channel. A nil channel, or one
// closed without a value, means Continue. The listener waits for the result
// before looking at the next key.
type AsyncFunc func(ctx context.Context, ev KeyEvent) <-chan Result

func (f AsyncFunc) HandleKey(ctx context.Context, ev KeyEvent) (Signal, error) {
	ch := f(ctx, ev)
	if ch == nil {
		return Continue, nil
	}
	select {
	case res, ok := <-ch:
		if !ok {
			return Continue, nil
		}
		return res.Signal, res.Err
	case <-ctx.Done():
		return Stop, ctx.Err()
	}
}

// Go runs fn on its own goroutine for every event and waits for it.
func Go(fn HandlerFunc) AsyncFunc {
	return func(ctx context.Context, ev KeyEvent) <-chan Result {
		ch := make(chan Result, 1)
		go func() {
			defer close(ch)
			sig, err := fn(ctx, ev)
			ch <- Result{Signal: sig, Err: err}
		}()
		return ch
	}
}
