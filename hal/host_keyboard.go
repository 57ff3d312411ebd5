//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var polledKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyH, KeyH},
}

func (k *hostKeyboard) poll() {
	for _, pk := range polledKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			k.emit(KeyEvent{Code: pk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(pk.key) {
			k.emit(KeyEvent{Code: pk.code, Press: false})
		}
	}
}
