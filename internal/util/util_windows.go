//go:build windows

package util

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// cliProcesses are parents that mean keypoll was started from a shell.
var cliProcesses = map[string]bool{
	"cmd.exe":             true,
	"powershell.exe":      true,
	"pwsh.exe":            true,
	"wt.exe":              true,
	"conhost.exe":         true,
	"windowsterminal.exe": true,
}

// IsRunFromGUI reports whether keypoll was launched from Explorer rather than
// a console, in which case there are no arguments to pick a command.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	hasConsole := hwnd != 0

	parentName := getParentProcessName()
	isCliParent := cliProcesses[strings.ToLower(parentName)]

	slog.Debug("Parent process", "parentName", parentName, "hasConsole", hasConsole, "isCliParent", isCliParent)

	if !hasConsole {
		return true
	}
	if isCliParent {
		return false
	}
	return strings.EqualFold(parentName, "explorer.exe")
}

// getParentProcessName walks the process snapshot once, remembering names by
// pid, and returns the executable name of our parent.
func getParentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	self := uint32(os.Getpid())
	var parent uint32
	names := map[uint32]string{}

	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		names[pe.ProcessID] = windows.UTF16ToString(pe.ExeFile[:])
		if pe.ProcessID == self {
			parent = pe.ParentProcessID
		}
	}
	if parent == 0 {
		return ""
	}
	return names[parent]
}
