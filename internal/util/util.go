//go:build !windows

package util

// IsRunFromGUI reports whether the process was started by double-clicking it.
// Outside Windows keypoll is always started from a shell.
func IsRunFromGUI() bool {
	return false
}
