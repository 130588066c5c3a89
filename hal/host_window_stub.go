//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Options
	Scale int
	TPS   int
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
