//go:build !cgo

package hal

func RunWindow(_ WindowConfig, _ func(HAL) func() error) error {
	return ErrNoWindow
}
