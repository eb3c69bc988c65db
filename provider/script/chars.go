package script

import (
	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/vk"
)

// keyChars is the pair of characters a key types without and with Shift.
type keyChars [2]rune

// common holds keys that type the same control character on every layout.
var common = map[vk.Code]keyChars{
	vk.Back:   {'\b', '\b'},
	vk.Tab:    {'\t', '\t'},
	vk.Return: {'\r', '\r'},
	vk.Escape: {0x1b, 0x1b},
	vk.Space:  {' ', ' '},
}

var usChars = buildTable(
	"1234567890", "!@#$%^&*()",
	"abcdefghijklmnopqrstuvwxyz", "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	map[vk.Code]keyChars{
		vk.Oem1: {';', ':'}, vk.OemPlus: {'=', '+'}, vk.OemComma: {',', '<'},
		vk.OemMinus: {'-', '_'}, vk.OemPeriod: {'.', '>'}, vk.Oem2: {'/', '?'},
		vk.Oem3: {'`', '~'}, vk.Oem4: {'[', '{'}, vk.Oem5: {'\\', '|'},
		vk.Oem6: {']', '}'}, vk.Oem7: {'\'', '"'},
	},
)

var ruChars = buildTable(
	"1234567890", "!\"№;%:?*()",
	"фисвуапршолдьтщзйкыегмцчня", "ФИСВУАПРШОЛДЬТЩЗЙКЫЕГМЦЧНЯ",
	map[vk.Code]keyChars{
		vk.Oem1: {'ж', 'Ж'}, vk.OemPlus: {'=', '+'}, vk.OemComma: {'б', 'Б'},
		vk.OemMinus: {'-', '_'}, vk.OemPeriod: {'ю', 'Ю'}, vk.Oem2: {'.', ','},
		vk.Oem3: {'ё', 'Ё'}, vk.Oem4: {'х', 'Х'}, vk.Oem5: {'\\', '/'},
		vk.Oem6: {'ъ', 'Ъ'}, vk.Oem7: {'э', 'Э'},
	},
)

// buildTable lays digits over vk 0x31..0x39,0x30 and letters over vk A..Z.
func buildTable(digits, shiftedDigits, letters, shiftedLetters string, oem map[vk.Code]keyChars) map[vk.Code]keyChars {
	t := make(map[vk.Code]keyChars, 64)
	d, sd := []rune(digits), []rune(shiftedDigits)
	for i := range d {
		code := vk.Key0 + vk.Code((i+1)%10)
		t[code] = keyChars{d[i], sd[i]}
	}
	l, sl := []rune(letters), []rune(shiftedLetters)
	for i := range l {
		t[vk.KeyA+vk.Code(i)] = keyChars{l[i], sl[i]}
	}
	for c, kc := range oem {
		t[c] = kc
	}
	return t
}

func tableFor(id layout.ID) map[vk.Code]keyChars {
	if id.Family() == layout.Cyrillic {
		return ruChars
	}
	return usChars
}
