package layout

import "github.com/Alia5/keypoll/vk"

type deadKey struct {
	id    ID
	code  vk.Code
	shift bool
}

// composition holds the characters reported for the two dead-key positions.
var composition = map[deadKey]rune{
	{EnglishUS, vk.Oem3, false}: '`',
	{EnglishUS, vk.Oem3, true}:  '~',
	{EnglishUS, vk.Oem7, false}: '\'',
	{EnglishUS, vk.Oem7, true}:  '"',
	{Russian, vk.Oem3, false}:   'ё',
	{Russian, vk.Oem3, true}:    'Ё',
	{Russian, vk.Oem7, false}:   'э',
	{Russian, vk.Oem7, true}:    'Э',
}

// IsDeadKey reports whether code is one of the dead-key positions.
func IsDeadKey(code vk.Code) bool {
	return code == vk.Oem3 || code == vk.Oem7
}

// Compose returns the character for a dead key on the given layout. shift is the
// effective shift state (Shift XOR CapsLock). It reports false for layouts without
// an entry, in which case the key goes through normal translation.
func Compose(id ID, code vk.Code, shift bool) (rune, bool) {
	r, ok := composition[deadKey{id: id, code: code, shift: shift}]
	return r, ok
}
