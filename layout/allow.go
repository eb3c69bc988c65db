package layout

// DefaultSymbols are the non-alphanumeric characters accepted as printable output.
const DefaultSymbols = `?.!";=-/,*+@#$%^&(){}<>~№:[]\_` + "`"

// diaeresis letters accepted on top of the Latin and Cyrillic ranges
const diaeresisLetters = "ёЁäöüÄÖÜëËïÏÿŸ"

// AllowList decides which translated characters are reported as printable.
// The zero value accepts letters and digits only.
type AllowList struct {
	extra map[rune]struct{}
}

// NewAllowList builds an allow-list accepting Latin and Cyrillic letters,
// digits, the diaeresis letters and every rune in symbols.
func NewAllowList(symbols string) AllowList {
	a := AllowList{extra: make(map[rune]struct{})}
	for _, r := range diaeresisLetters {
		a.extra[r] = struct{}{}
	}
	for _, r := range symbols {
		a.extra[r] = struct{}{}
	}
	return a
}

// DefaultAllowList returns the allow-list with DefaultSymbols.
func DefaultAllowList() AllowList {
	return NewAllowList(DefaultSymbols)
}

// Allows reports whether r is acceptable printable output.
func (a AllowList) Allows(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 'А' && r <= 'я':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	_, ok := a.extra[r]
	return ok
}
