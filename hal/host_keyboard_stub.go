//go:build !cgo

package hal

// Without the window backend nothing produces key events.
func (k *hostKeyboard) poll() {}
