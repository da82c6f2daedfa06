package chip8

const (
	Width  = 64
	Height = 32
)

type Display struct {
	gfx   [Width * Height]bool
	dirty bool
}

func (d *Display) clear() {
	d.gfx = [Width * Height]bool{}
	d.dirty = true
}

// drawSprite XORs an 8-pixel-wide sprite onto the screen. The origin wraps,
// pixels running off the right or bottom edge are clipped. It reports whether
// any lit pixel was switched off.
func (d *Display) drawSprite(x, y uint8, rows []uint8) bool {
	collision := false
	ox := int(x) % Width
	oy := int(y) % Height
	for row, bits := range rows {
		py := oy + row
		if py >= Height {
			break
		}
		for col := 0; col < 8; col++ {
			px := ox + col
			if px >= Width {
				break
			}
			if bits&(0x80>>col) == 0 {
				continue
			}
			p := py*Width + px
			if d.gfx[p] {
				collision = true
			}
			d.gfx[p] = !d.gfx[p]
		}
	}
	d.dirty = true
	return collision
}

// snapshot hands out a copy of the screen if it changed since the last call.
func (d *Display) snapshot() *[Width * Height]bool {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	frame := d.gfx
	return &frame
}
