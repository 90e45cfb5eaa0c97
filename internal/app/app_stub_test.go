//go:build !ebiten

package app

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRunWithoutGUI(t *testing.T) {
	if err := Run(NewConfig()); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("expected ErrNoGUI, got %v", err)
	}
}
