//go:build !ebiten

package app

// Run always fails in the headless build.
func Run(*Config) error {
	return ErrNoGUI
}
