package ssd1306

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/font"
)

// SetFont selects the font used by DrawChar and PutChar and returns its
// index. It panics when i is not below TotalFonts.
func (d *Dev) SetFont(i uint8) uint8 {
	if int(i) >= len(d.fonts) {
		panic(fmt.Sprintf("ssd1306: font %d out of range, %d fonts available", i, len(d.fonts)))
	}
	d.fontIdx = i
	d.font = d.fonts[i]
	return i
}

// Font returns the index of the selected font.
func (d *Dev) Font() uint8 {
	return d.fontIdx
}

// FontWidth returns the glyph width of the selected font in pixels.
func (d *Dev) FontWidth() uint8 {
	return d.font.Width
}

// FontHeight returns the glyph height of the selected font in pixels.
func (d *Dev) FontHeight() uint8 {
	return d.font.Height
}

// FontStartChar returns the first character of the selected font.
func (d *Dev) FontStartChar() uint8 {
	return d.font.FirstChar
}

// FontTotalChars returns the number of characters of the selected font.
func (d *Dev) FontTotalChars() uint8 {
	return d.font.TotalChars
}

// TotalFonts returns the number of selectable fonts.
func (d *Dev) TotalFonts() uint8 {
	return uint8(len(d.fonts))
}

// SetCursor moves the text cursor used by PutChar.
func (d *Dev) SetCursor(x, y uint8) {
	d.cursorX = x
	d.cursorY = y
}

// Cursor returns the text cursor position.
func (d *Dev) Cursor() (x, y uint8) {
	return d.cursorX, d.cursorY
}

// SetDrawColor sets the color used by PutChar.
func (d *Dev) SetDrawColor(c Color) {
	d.color = c
}

// DrawColor returns the color used by PutChar.
func (d *Dev) DrawColor() Color {
	return d.color
}

// SetDrawMode sets the mode used by PutChar.
func (d *Dev) SetDrawMode(m Mode) {
	d.mode = m
}

// DrawMode returns the mode used by PutChar.
func (d *Dev) DrawMode() Mode {
	return d.mode
}

// DrawChar draws ch with its top left corner at (x, y). Set glyph bits are
// drawn in c and clear bits in the inverse of c, so the glyph cell is opaque.
//
// It panics when the selected font has no glyph for ch.
func (d *Dev) DrawChar(x, y uint8, ch byte, c Color, m Mode) {
	f := d.font
	g := f.Glyph(ch)
	bg := c.Inverse()
	w := int(f.Width)

	if !f.MultiRow() {
		// Single page fonts have no spacing in the table; draw a blank
		// column after the glyph.
		for i := 0; i <= w; i++ {
			var bits byte
			if i < w {
				bits = f.Column(g, 0, i)
			}
			d.drawColumn(int(x)+i, int(y), bits, c, bg, m)
		}
		return
	}

	for page := 0; page < f.Pages(); page++ {
		for i := 0; i < w; i++ {
			d.drawColumn(int(x)+i, int(y)+page*font.PageHeight, f.Column(g, page, i), c, bg, m)
		}
	}
}

// drawColumn draws the 8 pixels of one glyph byte, least significant bit on
// top.
func (d *Dev) drawColumn(x, y int, bits byte, fg, bg Color, m Mode) {
	for j := 0; j < font.PageHeight; j++ {
		if bits&1 != 0 {
			d.plot(x, y+j, fg, m)
		} else {
			d.plot(x, y+j, bg, m)
		}
		bits >>= 1
	}
}

// PutChar writes ch at the cursor with the current color and mode, then
// advances the cursor. '\n' starts a new line and '\r' is ignored. The cursor
// wraps when the next glyph would not fit.
func (d *Dev) PutChar(ch byte) {
	switch ch {
	case '\n':
		d.newline()
	case '\r':
	default:
		d.DrawChar(d.cursorX, d.cursorY, ch, d.color, d.mode)
		d.cursorX += d.font.Width + 1
		if int(d.cursorX) > screenWidth-int(d.font.Width) {
			d.newline()
		}
	}
}

func (d *Dev) newline() {
	d.cursorY += d.font.Height
	d.cursorX = 0
}

// Print writes s through PutChar.
func (d *Dev) Print(s string) {
	for i := 0; i < len(s); i++ {
		d.PutChar(s[i])
	}
}

// Printf formats according to a format specifier and writes the result
// through PutChar.
func (d *Dev) Printf(format string, a ...interface{}) {
	d.Print(fmt.Sprintf(format, a...))
}
