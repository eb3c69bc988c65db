package vk

import "fmt"

// RawState is the SHORT returned by GetKeyState / GetAsyncKeyState.
type RawState int16

// GetKeyState values
const (
	StateUp          RawState = 0
	StateToggled     RawState = 1
	StateDownToggled RawState = -127 // 0xFF81
	StateDown        RawState = -128 // 0xFF80
)

// GetAsyncKeyState values
const (
	AsyncDown        RawState = -32768 // 0x8000
	AsyncDownPressed RawState = -32767 // 0x8001, also pressed since the last query
)

// IsDown reports whether a GetKeyState sample means the key is held.
func (s RawState) IsDown() bool {
	return s == StateDown || s == StateDownToggled
}

// IsAsyncDown reports whether a GetAsyncKeyState sample means the key is held.
func (s RawState) IsAsyncDown() bool {
	return s == AsyncDown || s == AsyncDownPressed
}

// IsToggled reports whether a lock key is on and currently released.
func (s RawState) IsToggled() bool {
	return s == StateToggled
}

// Hex returns the two's complement hex form of the sample, e.g. "ff80".
func (s RawState) Hex() string {
	return fmt.Sprintf("%04x", uint16(s))
}
