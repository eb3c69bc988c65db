// Package layout classifies keyboard layouts and holds the static, layout
// dependent tables used when turning a keycode into text: dead-key composition,
// ANSI code page decoding and the printable character allow-list.
package layout

import "fmt"

// ID is a keyboard layout (locale) identifier: the low word of a Win32 HKL.
type ID uint16

const (
	EnglishUS       ID = 0x0409 // 1033
	Russian         ID = 0x0419 // 1049
	Ukrainian       ID = 0x0422
	Belarusian      ID = 0x0423
	Bulgarian       ID = 0x0402
	Macedonian      ID = 0x042F
	Kazakh          ID = 0x043F
	Mongolian       ID = 0x0450
	SerbianCyrillic ID = 0x0C1A
	SerbianLatin    ID = 0x081A
	BosnianCyrillic ID = 0x201A
)

const (
	primaryLangMask   ID = 0x03FF
	primaryLangSerbia ID = 0x001A
)

// FromHKL extracts the layout identifier from a keyboard layout handle.
func FromHKL(hkl uintptr) ID {
	return ID(hkl & 0xFFFF)
}

// Family is the script family of a layout.
type Family int

const (
	Other Family = iota
	Latin
	Cyrillic
)

func (f Family) String() string {
	switch f {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	default:
		return "other"
	}
}

// primary language ids (LANGID & 0x3FF) per family
var (
	cyrillicLangs = map[ID]bool{
		0x02: true, // bg
		0x19: true, // ru
		0x22: true, // uk
		0x23: true, // be
		0x2F: true, // mk
		0x3F: true, // kk
		0x50: true, // mn
	}
	latinLangs = map[ID]bool{
		0x03: true, // ca
		0x05: true, // cs
		0x06: true, // da
		0x07: true, // de
		0x09: true, // en
		0x0A: true, // es
		0x0B: true, // fi
		0x0C: true, // fr
		0x0E: true, // hu
		0x0F: true, // is
		0x10: true, // it
		0x13: true, // nl
		0x14: true, // no
		0x15: true, // pl
		0x16: true, // pt
		0x1D: true, // sv
		0x1F: true, // tr
	}
)

// Family classifies the layout by its primary language.
func (id ID) Family() Family {
	lang := id & primaryLangMask
	if lang == primaryLangSerbia {
		switch id {
		case SerbianCyrillic, BosnianCyrillic:
			return Cyrillic
		}
		return Latin
	}
	if cyrillicLangs[lang] {
		return Cyrillic
	}
	if latinLangs[lang] {
		return Latin
	}
	return Other
}

func (id ID) String() string {
	switch id {
	case EnglishUS:
		return "en-US"
	case Russian:
		return "ru-RU"
	}
	return fmt.Sprintf("0x%04x", uint16(id))
}
