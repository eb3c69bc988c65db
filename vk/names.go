package vk

import "sort"

// names maps keys that have no printable output to their display names.
var names = map[Code]string{
	// Mouse
	LButton: "MouseLeft", RButton: "MouseRight",

	// Editing and control
	Back:    "BackSpace",
	Tab:     "Tab",
	Return:  "Enter",
	Shift:   "Shift",
	Pause:   "Pause",
	Capital: "CapsLock",
	Escape:  "Esc",
	Space:   "Space",

	// Navigation
	Prior:    "PgUp",
	Next:     "PgDown",
	End:      "End",
	Home:     "Home",
	Left:     "Left",
	Up:       "Up",
	Right:    "Right",
	Down:     "Down",
	Snapshot: "PrSc",
	Insert:   "Insert",
	Delete:   "Delete",
	RWin:     "Win",
	Apps:     "Select",

	// Function keys
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",

	// Locks and modifiers
	NumLock: "NumLock",
	Scroll:  "ScLock",
	LMenu:   "Alt",
}

// Name returns the display name of a non-printable key.
func Name(c Code) (string, bool) {
	n, ok := names[c]
	return n, ok
}

// NamedCodes returns every code with a display name in ascending order.
func NamedCodes() []Code {
	out := make([]Code, 0, len(names))
	for c := range names {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
