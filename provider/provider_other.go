//go:build !windows

package provider

// New returns the native provider. There is none outside Windows; use a
// scripted provider instead.
func New() (Provider, error) {
	return nil, ErrUnsupported
}
