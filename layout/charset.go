package layout

import "golang.org/x/text/encoding/charmap"

// CodePage returns the ANSI code page used to decode characters produced on
// this layout.
func (id ID) CodePage() *charmap.Charmap {
	if id.Family() == Cyrillic {
		return charmap.Windows1251
	}
	return charmap.Windows1252
}

// Decode converts a single ANSI byte produced by key translation on the given
// layout into a rune.
func Decode(id ID, b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return id.CodePage().DecodeByte(b)
}
