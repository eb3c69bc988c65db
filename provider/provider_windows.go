//go:build windows

package provider

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Alia5/keypoll/layout"
	"github.com/Alia5/keypoll/vk"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetKeyState       = user32.NewProc("GetKeyState")
	procGetAsyncKeyState  = user32.NewProc("GetAsyncKeyState")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
	procGetKeyboardState  = user32.NewProc("GetKeyboardState")
	procToAsciiEx         = user32.NewProc("ToAsciiEx")
	procs                 = []*windows.LazyProc{procGetKeyState, procGetAsyncKeyState, procGetKeyboardLayout, procGetKeyboardState, procToAsciiEx}
)

type win32 struct {
	kbd [256]byte
}

// New returns the Win32 provider backed by user32.dll.
func New() (Provider, error) {
	for _, p := range procs {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p.Name, err)
		}
	}
	return &win32{}, nil
}

func (w *win32) KeyState(code vk.Code) (vk.RawState, error) {
	r, _, _ := procGetKeyState.Call(uintptr(code))
	return vk.RawState(int16(r)), nil
}

func (w *win32) AsyncKeyState(code vk.Code) (vk.RawState, error) {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(code))
	return vk.RawState(int16(r)), nil
}

func (w *win32) KeyboardLayout() (layout.ID, error) {
	hkl, _, _ := procGetKeyboardLayout.Call(0)
	return layout.FromHKL(hkl), nil
}

func (w *win32) ForegroundLayout() (layout.ID, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return 0, ErrNoForegroundWindow
	}
	tid, err := windows.GetWindowThreadProcessId(hwnd, nil)
	if err != nil {
		return 0, fmt.Errorf("GetWindowThreadProcessId: %w", err)
	}
	hkl, _, _ := procGetKeyboardLayout.Call(uintptr(tid))
	return layout.FromHKL(hkl), nil
}

// Translate runs ToAsciiEx against the live keyboard state of the calling
// thread; mods only contributes the layout used to decode the output byte.
func (w *win32) Translate(code vk.Code, mods Modifiers) (rune, bool, error) {
	ok, _, callErr := procGetKeyboardState.Call(uintptr(unsafe.Pointer(&w.kbd[0])))
	if ok == 0 {
		return 0, false, fmt.Errorf("GetKeyboardState: %w", callErr)
	}

	hkl, _, _ := procGetKeyboardLayout.Call(0)
	var out uint16
	n, _, _ := procToAsciiEx.Call(
		uintptr(code),
		0,
		uintptr(unsafe.Pointer(&w.kbd[0])),
		uintptr(unsafe.Pointer(&out)),
		0,
		hkl,
	)
	if int32(n) != 1 {
		return 0, false, nil
	}

	id := mods.InputLayout
	if id == 0 {
		id = layout.FromHKL(hkl)
	}
	return layout.Decode(id, byte(out)), true, nil
}
