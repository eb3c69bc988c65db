// Package vk defines Windows virtual-key codes, the raw key state values reported
// for them, and the display names of keys that do not produce printable output.
package vk

// Code is a virtual-key code. Only codes 0x00-0xFE are polled.
type Code uint8

// NumCodes is the size of the polled keycode space.
const NumCodes = 255

// Mouse buttons reported through the keyboard state table
const (
	LButton Code = 0x01
	RButton Code = 0x02
	Cancel  Code = 0x03
	MButton Code = 0x04
)

// Editing and control keys
const (
	Back    Code = 0x08
	Tab     Code = 0x09
	Clear   Code = 0x0C
	Return  Code = 0x0D
	Shift   Code = 0x10
	Control Code = 0x11
	Menu    Code = 0x12 // Alt
	Pause   Code = 0x13
	Capital Code = 0x14 // CapsLock
	Escape  Code = 0x1B
	Space   Code = 0x20
)

// Navigation keys
const (
	Prior    Code = 0x21 // Page Up
	Next     Code = 0x22 // Page Down
	End      Code = 0x23
	Home     Code = 0x24
	Left     Code = 0x25
	Up       Code = 0x26
	Right    Code = 0x27
	Down     Code = 0x28
	Snapshot Code = 0x2C // Print Screen
	Insert   Code = 0x2D
	Delete   Code = 0x2E
)

// Digits 0-9 and letters A-Z share their ASCII values.
const (
	Key0 Code = 0x30
	Key9 Code = 0x39
	KeyA Code = 0x41
	KeyB Code = 0x42
	KeyC Code = 0x43
	KeyZ Code = 0x5A
)

// Windows keys
const (
	LWin Code = 0x5B
	RWin Code = 0x5C
	Apps Code = 0x5D
)

// Function keys
const (
	F1  Code = 0x70
	F2  Code = 0x71
	F3  Code = 0x72
	F4  Code = 0x73
	F5  Code = 0x74
	F6  Code = 0x75
	F7  Code = 0x76
	F8  Code = 0x77
	F9  Code = 0x78
	F10 Code = 0x79
	F11 Code = 0x7A
	F12 Code = 0x7B
)

// Lock keys
const (
	NumLock Code = 0x90
	Scroll  Code = 0x91
)

// Left/right modifier variants
const (
	LShift   Code = 0xA0
	RShift   Code = 0xA1
	LControl Code = 0xA2
	RControl Code = 0xA3
	LMenu    Code = 0xA4
	RMenu    Code = 0xA5
)

// OEM keys (US layout legends)
const (
	Oem1      Code = 0xBA // ; and :
	OemPlus   Code = 0xBB // = and +
	OemComma  Code = 0xBC // , and <
	OemMinus  Code = 0xBD // - and _
	OemPeriod Code = 0xBE // . and >
	Oem2      Code = 0xBF // / and ?
	Oem3      Code = 0xC0 // ` and ~, dead key on some layouts
	Oem4      Code = 0xDB // [ and {
	Oem5      Code = 0xDC // \ and |
	Oem6      Code = 0xDD // ] and }
	Oem7      Code = 0xDE // ' and ", dead key on some layouts
)
