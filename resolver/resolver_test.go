package resolver_test

import (
	"errors"
	"testing"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/provider"
	"github.com/Alia5/keypoll/resolver"
	"github.com/Alia5/keypoll/vk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTranslator types the same rune for every key and counts its calls.
type fixedTranslator struct {
	r     rune
	ok    bool
	err   error
	calls int
}

func (f *fixedTranslator) Translate(code vk.Code, mods provider.Modifiers) (rune, bool, error) {
	f.calls++
	return f.r, f.ok, f.err
}

func none() *fixedTranslator { return &fixedTranslator{} }

func TestResolveCtrl(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())
	tr := &fixedTranslator{r: 'x', ok: true}

	for _, mods := range []provider.Modifiers{{}, {Ctrl: true}, {Shift: true, Caps: true}} {
		sym, ok, err := r.Resolve(vk.Control, mods, tr)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Ctrl", sym)
	}
	assert.Zero(t, tr.calls)
}

func TestResolveDeadKeys(t *testing.T) {
	type testCase struct {
		name string
		code vk.Code
		mods provider.Modifiers
		want string
	}
	cases := []testCase{
		{name: "us grave", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.EnglishUS}, want: "`"},
		{name: "us tilde", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.EnglishUS, Shift: true}, want: "~"},
		{name: "us caps inverts", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.EnglishUS, Caps: true}, want: "~"},
		{name: "us caps and shift", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.EnglishUS, Shift: true, Caps: true}, want: "`"},
		{name: "us apostrophe", code: vk.Oem7, mods: provider.Modifiers{Layout: layout.EnglishUS}, want: "'"},
		{name: "us quote", code: vk.Oem7, mods: provider.Modifiers{Layout: layout.EnglishUS, Shift: true}, want: `"`},
		{name: "ru yo", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.Russian}, want: "ё"},
		{name: "ru YO", code: vk.Oem3, mods: provider.Modifiers{Layout: layout.Russian, Shift: true}, want: "Ё"},
		{name: "ru e", code: vk.Oem7, mods: provider.Modifiers{Layout: layout.Russian}, want: "э"},
		{name: "ru E caps", code: vk.Oem7, mods: provider.Modifiers{Layout: layout.Russian, Caps: true}, want: "Э"},
	}
	r := resolver.New(resolver.DefaultConfig())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := none()
			sym, ok, err := r.Resolve(c.code, c.mods, tr)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, c.want, sym)
			assert.Zero(t, tr.calls, "composed keys must not be translated")
		})
	}
}

func TestResolveDeadKeyFallsThrough(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())

	// unknown layout goes to translation
	tr := &fixedTranslator{r: 'ä', ok: true}
	sym, ok, err := r.Resolve(vk.Oem7, provider.Modifiers{Layout: 0x0407}, tr)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ä", sym)
	assert.Equal(t, 1, tr.calls)

	// Ctrl skips composition
	tr = &fixedTranslator{}
	_, ok, err = r.Resolve(vk.Oem3, provider.Modifiers{Layout: layout.EnglishUS, Ctrl: true}, tr)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, tr.calls)
}

func TestResolveTranslation(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())

	sym, ok, err := r.Resolve(vk.KeyA, provider.Modifiers{}, &fixedTranslator{r: 'a', ok: true})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", sym)

	sym, ok, err = r.Resolve(vk.KeyA+5, provider.Modifiers{InputLayout: layout.Russian}, &fixedTranslator{r: 'Ж', ok: true})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ж", sym)

	// Enter translates to '\r', which is not printable, so the name wins.
	sym, ok, err = r.Resolve(vk.Return, provider.Modifiers{}, &fixedTranslator{r: '\r', ok: true})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Enter", sym)

	// No character and no name.
	_, ok, err = r.Resolve(vk.LControl, provider.Modifiers{}, none())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveCtrlSuppressesNames(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())

	_, ok, err := r.Resolve(vk.F2, provider.Modifiers{Ctrl: true}, none())
	require.NoError(t, err)
	assert.False(t, ok, "Ctrl+F2 must not resolve")

	sym, ok, err := r.Resolve(vk.F2, provider.Modifiers{}, none())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "F2", sym)

	// Ctrl+C translates to ETX, which is neither printable nor named.
	_, ok, err = r.Resolve(vk.KeyA+2, provider.Modifiers{Ctrl: true}, &fixedTranslator{r: 0x03, ok: true})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveNamesRoundTrip(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())
	codes := vk.NamedCodes()
	assert.Len(t, codes, 38)
	for _, c := range codes {
		want, _ := vk.Name(c)
		sym, ok, err := r.Resolve(c, provider.Modifiers{}, none())
		require.NoError(t, err)
		assert.True(t, ok, "code %d", c)
		assert.Equal(t, want, sym, "code %d", c)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())
	mods := provider.Modifiers{Shift: true, Caps: true, Layout: layout.Russian, InputLayout: layout.Russian}
	for code := 0; code < vk.NumCodes; code++ {
		a, aok, aerr := r.Resolve(vk.Code(code), mods, &fixedTranslator{r: 'q', ok: true})
		b, bok, berr := r.Resolve(vk.Code(code), mods, &fixedTranslator{r: 'q', ok: true})
		assert.Equal(t, a, b)
		assert.Equal(t, aok, bok)
		assert.Equal(t, aerr, berr)
	}
}

func TestResolveAllowList(t *testing.T) {
	strict := resolver.New(resolver.Config{})
	_, ok, err := strict.Resolve(vk.OemPeriod, provider.Modifiers{}, &fixedTranslator{r: '.', ok: true})
	require.NoError(t, err)
	assert.False(t, ok)

	extra := resolver.New(resolver.Config{Symbols: layout.DefaultSymbols, ExtraChars: "|"})
	sym, ok, err := extra.Resolve(vk.Oem5, provider.Modifiers{Shift: true}, &fixedTranslator{r: '|', ok: true})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "|", sym)
}

func TestResolveTranslatorError(t *testing.T) {
	boom := errors.New("boom")
	r := resolver.New(resolver.DefaultConfig())
	_, ok, err := r.Resolve(vk.KeyA, provider.Modifiers{}, &fixedTranslator{err: boom})
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestNeedsLayout(t *testing.T) {
	assert.True(t, resolver.NeedsLayout(vk.Oem3, false))
	assert.True(t, resolver.NeedsLayout(vk.Oem7, false))
	assert.False(t, resolver.NeedsLayout(vk.Oem7, true))
	assert.False(t, resolver.NeedsLayout(vk.KeyA, false))
}
