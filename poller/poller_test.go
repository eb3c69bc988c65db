package poller_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keypoll/internal/log"
	th "github.com/Alia5/keypoll/internal/testing"
	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/poller"
	"github.com/Alia5/keypoll/provider/script"
	"github.com/Alia5/keypoll/vk"
)

type collector struct {
	got []poller.Transition
}

func (c *collector) fn(tr poller.Transition) (poller.Signal, error) {
	c.got = append(c.got, tr)
	return poller.Continue, nil
}

func (c *collector) take() []poller.Transition {
	out := c.got
	c.got = nil
	return out
}

func sweep(t *testing.T, p *poller.Poller, c *collector) []poller.Transition {
	t.Helper()
	sig, err := p.Sweep(c.fn)
	require.NoError(t, err)
	require.Equal(t, poller.Continue, sig)
	return c.take()
}

func TestPressAndRelease(t *testing.T) {
	prov := th.NewProvider(t, layout.EnglishUS, th.Down(vk.KeyA), th.Down(vk.KeyA), th.Down(), th.Down())
	p := poller.New(prov, poller.DefaultConfig(), slog.Default(), nil)
	c := &collector{}

	got := sweep(t, p, c)
	require.Len(t, got, 1)
	assert.Equal(t, poller.Transition{Code: vk.KeyA, Kind: poller.Press, Raw: vk.StateDown}, got[0])
	raw, held := p.Table().Tracked(vk.KeyA)
	assert.True(t, held)
	assert.Equal(t, vk.StateDown, raw)

	assert.Empty(t, sweep(t, p, c), "no duplicate press while held")

	got = sweep(t, p, c)
	require.Len(t, got, 1)
	assert.Equal(t, poller.Release, got[0].Kind)
	assert.Equal(t, vk.KeyA, got[0].Code)
	assert.Zero(t, p.Table().Len())

	assert.Empty(t, sweep(t, p, c), "no duplicate release while released")
}

func TestSweepOrder(t *testing.T) {
	prov := th.NewProvider(t, layout.EnglishUS, th.Down(vk.KeyZ, vk.Shift, vk.KeyA), th.Down(vk.F1))
	p := poller.New(prov, poller.DefaultConfig(), nil, nil)
	c := &collector{}

	got := sweep(t, p, c)
	require.Len(t, got, 3)
	assert.Equal(t, []vk.Code{vk.Shift, vk.KeyA, vk.KeyZ}, []vk.Code{got[0].Code, got[1].Code, got[2].Code})
	assert.Equal(t, []vk.Code{vk.Shift, vk.KeyA, vk.KeyZ}, p.Table().Codes())

	got = sweep(t, p, c)
	require.Len(t, got, 4)
	assert.Equal(t, vk.Shift, got[0].Code)
	assert.Equal(t, poller.Release, got[0].Kind)
	assert.Equal(t, vk.KeyA, got[1].Code)
	assert.Equal(t, vk.KeyZ, got[2].Code)
	assert.Equal(t, vk.F1, got[3].Code)
	assert.Equal(t, poller.Press, got[3].Kind)
	assert.Equal(t, []vk.Code{vk.F1}, p.Table().Codes())
}

func TestToggledDownCountsAsDown(t *testing.T) {
	prov := th.NewProvider(t, layout.EnglishUS,
		script.Frame{Down: []int{int(vk.Capital)}, Toggled: []int{int(vk.Capital)}},
		script.Frame{Toggled: []int{int(vk.Capital)}},
	)
	p := poller.New(prov, poller.DefaultConfig(), nil, nil)
	c := &collector{}

	got := sweep(t, p, c)
	require.Len(t, got, 1)
	assert.Equal(t, vk.StateDownToggled, got[0].Raw)

	got = sweep(t, p, c)
	require.Len(t, got, 1)
	assert.Equal(t, poller.Release, got[0].Kind)
	assert.Equal(t, vk.StateToggled, got[0].Raw)
}

func TestRepeatMode(t *testing.T) {
	frames := []script.Frame{
		{Raw: []script.RawSample{{Code: int(vk.KeyA), State: int(vk.StateDown)}}},
		{Raw: []script.RawSample{{Code: int(vk.KeyA), State: int(vk.StateDownToggled)}}},
		{Raw: []script.RawSample{{Code: int(vk.KeyA), State: int(vk.StateDownToggled)}}},
		{},
	}

	t.Run("repeat", func(t *testing.T) {
		p := poller.New(th.NewProvider(t, layout.EnglishUS, frames...), poller.Config{Repeat: true}, nil, nil)
		c := &collector{}

		got := sweep(t, p, c)
		require.Len(t, got, 1)
		assert.False(t, got[0].Repeat)

		got = sweep(t, p, c)
		require.Len(t, got, 1)
		assert.Equal(t, poller.Press, got[0].Kind)
		assert.True(t, got[0].Repeat)
		raw, _ := p.Table().Tracked(vk.KeyA)
		assert.Equal(t, vk.StateDownToggled, raw)

		assert.Empty(t, sweep(t, p, c))

		got = sweep(t, p, c)
		require.Len(t, got, 1)
		assert.Equal(t, poller.Release, got[0].Kind)
	})

	t.Run("no repeat", func(t *testing.T) {
		p := poller.New(th.NewProvider(t, layout.EnglishUS, frames...), poller.Config{}, nil, nil)
		c := &collector{}
		assert.Len(t, sweep(t, p, c), 1)
		assert.Empty(t, sweep(t, p, c))
		assert.Empty(t, sweep(t, p, c))
		assert.Len(t, sweep(t, p, c), 1)
	})
}

func TestStopLeavesRestOfSweep(t *testing.T) {
	prov := th.NewProvider(t, layout.EnglishUS, script.Frame{Down: []int{int(vk.Shift), int(vk.KeyA), int(vk.KeyB)}, Hold: 1})
	p := poller.New(prov, poller.DefaultConfig(), nil, nil)

	var seen []vk.Code
	stopAtA := func(tr poller.Transition) (poller.Signal, error) {
		seen = append(seen, tr.Code)
		if tr.Code == vk.KeyA {
			return poller.Stop, nil
		}
		return poller.Continue, nil
	}
	sig, err := p.Sweep(stopAtA)
	require.NoError(t, err)
	assert.Equal(t, poller.Stop, sig)
	assert.Equal(t, []vk.Code{vk.Shift, vk.KeyA}, seen)
	assert.Equal(t, []vk.Code{vk.Shift, vk.KeyA}, p.Table().Codes())

	c := &collector{}
	got := sweep(t, p, c)
	require.Len(t, got, 1)
	assert.Equal(t, vk.KeyB, got[0].Code)
}

func TestReaderErrorIsFatal(t *testing.T) {
	boom := errors.New("access denied")
	p := poller.New(&th.FailingReader{FailAt: 42, Err: boom}, poller.Config{}, nil, nil)

	err := p.Run(context.Background(), (&collector{}).fn)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "vk 42")
}

func TestCallbackErrorIsReturned(t *testing.T) {
	boom := errors.New("handler failed")
	p := poller.New(th.NewProvider(t, layout.EnglishUS, th.Down(vk.KeyA)), poller.Config{}, nil, nil)

	err := p.Run(context.Background(), func(poller.Transition) (poller.Signal, error) { return poller.Continue, boom })
	assert.Equal(t, boom, err)
}

func TestRun(t *testing.T) {
	t.Run("stop returns nil", func(t *testing.T) {
		prov := th.NewProvider(t, layout.EnglishUS, th.Taps(vk.KeyA, vk.KeyB, vk.KeyC)...)
		p := poller.New(prov, poller.Config{}, nil, nil)

		n := 0
		err := p.Run(context.Background(), func(poller.Transition) (poller.Signal, error) {
			n++
			if n == 3 {
				return poller.Stop, nil
			}
			return poller.Continue, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, 3, prov.Sweeps())
	})

	t.Run("script end", func(t *testing.T) {
		prov := th.NewProvider(t, layout.EnglishUS, th.Taps(vk.KeyA)...)
		p := poller.New(prov, poller.Config{}, nil, nil)
		c := &collector{}
		err := p.Run(context.Background(), c.fn)
		assert.ErrorIs(t, err, script.ErrScriptEnded)
		assert.Len(t, c.got, 2)
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := poller.New(&th.FailingReader{FailAt: 0, Err: errors.New("never read")}, poller.Config{Interval: time.Hour}, nil, nil)
		err := p.Run(ctx, (&collector{}).fn)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("interval", func(t *testing.T) {
		prov := th.NewProvider(t, layout.EnglishUS, th.Down(), th.Down())
		p := poller.New(prov, poller.Config{Interval: 20 * time.Millisecond}, nil, nil)
		start := time.Now()
		err := p.Run(context.Background(), (&collector{}).fn)
		assert.ErrorIs(t, err, script.ErrScriptEnded)
		assert.True(t, time.Since(start) >= 60*time.Millisecond, "three intervals must elapse")
	})
}

func TestRawTrace(t *testing.T) {
	var buf bytes.Buffer
	prov := th.NewProvider(t, layout.EnglishUS, th.Taps(vk.Return)...)
	p := poller.New(prov, poller.Config{}, nil, log.NewRaw(&buf))
	c := &collector{}
	sweep(t, p, c)
	sweep(t, p, c)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DOWN vk: 0x0d (13), raw: ff80")
	assert.Contains(t, lines[1], "UP   vk: 0x0d (13), raw: 0000")
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "press", poller.Press.String())
	assert.Equal(t, "release", poller.Release.String())
	assert.Equal(t, "stop", poller.Stop.String())
	assert.Equal(t, "continue", poller.Continue.String())
}
