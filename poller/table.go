package poller

import "github.com/Alia5/keypoll/vk"

// Table tracks which keycodes are currently down and the raw sample last seen
// for each of them. A code is present iff the poller considers it held.
type Table struct {
	bits [32]uint8 // membership bitmap for codes 0x00-0xFF
	raw  [vk.NumCodes]vk.RawState
	n    int
}

// Tracked returns the last raw sample for code and whether it is held.
func (t *Table) Tracked(code vk.Code) (vk.RawState, bool) {
	if t.bits[code/8]&(1<<(code%8)) == 0 {
		return 0, false
	}
	return t.raw[code], true
}

// Len returns the number of held keys.
func (t *Table) Len() int {
	return t.n
}

// Codes returns the held keycodes in ascending order.
func (t *Table) Codes() []vk.Code {
	out := make([]vk.Code, 0, t.n)
	for i := 0; i < vk.NumCodes; i++ {
		if t.bits[i/8]&(1<<uint(i%8)) != 0 {
			out = append(out, vk.Code(i))
		}
	}
	return out
}

func (t *Table) track(code vk.Code, raw vk.RawState) {
	if t.bits[code/8]&(1<<(code%8)) == 0 {
		t.n++
	}
	t.bits[code/8] |= 1 << (code % 8)
	t.raw[code] = raw
}

func (t *Table) untrack(code vk.Code) {
	if t.bits[code/8]&(1<<(code%8)) == 0 {
		return
	}
	t.bits[code/8] &^= 1 << (code % 8)
	t.raw[code] = 0
	t.n--
}
