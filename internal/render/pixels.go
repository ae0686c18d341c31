package render

import (
	"image/color"

	"torus-ca/pkg/automata"
)

// fillGridRGBA converts the grid's cells into RGBA pixels in buf, row by
// row. Dead cells take the off color, everything else the on color. The
// grid is read fresh cell by cell; nothing is cached across calls.
func fillGridRGBA(buf []byte, g automata.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for v := 0; v < g.VerticalSize(); v++ {
		for h := 0; h < g.HorizontalSize(); h++ {
			base := i * 4
			if g.Get(h, v) != automata.Dead {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			i++
		}
	}
}
