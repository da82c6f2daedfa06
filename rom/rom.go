package rom

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
)

// MaxSize is the room between the CHIP-8 program origin (0x200) and the top
// of its 4 KiB memory.
const MaxSize = 4096 - 0x200

//go:embed keypad-demo.ch8
var keypadDemo []byte

// Program is the image the host boots: a sprite steered with keys 4 and 6
// that beeps while key 5 is held.
var Program = mustLoad(bytes.NewReader(keypadDemo))

// Load reads a whole program image. Contents are not validated; only the size
// is checked.
func Load(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("rom: read: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rom: empty image")
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("rom: image exceeds %d bytes", MaxSize)
	}
	return data, nil
}

func mustLoad(r io.Reader) []byte {
	data, err := Load(r)
	if err != nil {
		panic(err)
	}
	return data
}
