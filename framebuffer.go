package ssd1306

import (
	"errors"
	"fmt"
)

// Clear turns every pixel of the framebuffer off. The display is not updated.
func (d *Dev) Clear() {
	d.ClearTo(0)
}

// ClearTo sets every framebuffer byte to v.
func (d *Dev) ClearTo(v byte) {
	for i := range d.img.Pix {
		d.img.Pix[i] = v
	}
}

// ClearAndDisplay clears the framebuffer and pushes it to the display.
func (d *Dev) ClearAndDisplay() {
	d.Clear()
	d.Display()
}

// Pixel draws one pixel. Coordinates outside the screen are ignored.
func (d *Dev) Pixel(x, y uint8, c Color, m Mode) {
	d.plot(int(x), int(y), c, m)
}

// plot is Pixel on signed coordinates so shapes crossing the top or left edge
// are clipped instead of wrapping around.
func (d *Dev) plot(x, y int, c Color, m Mode) {
	if x < 0 || y < 0 || x >= screenWidth || y >= screenHeight {
		return
	}
	offset, mask := d.img.PixOffset(x, y)
	switch {
	case m == XOR && c == White:
		d.img.Pix[offset] ^= mask
	case m == XOR:
		// Only lit pixels toggle.
	case c == White:
		d.img.Pix[offset] |= mask
	default:
		d.img.Pix[offset] &^= mask
	}
}

// Get reports whether the pixel at (x, y) is lit in the framebuffer.
func (d *Dev) Get(x, y uint8) bool {
	if x >= screenWidth || y >= screenHeight {
		return false
	}
	offset, mask := d.img.PixOffset(int(x), int(y))
	return d.img.Pix[offset]&mask != 0
}

// Bytes returns a copy of the framebuffer, one byte per column per page.
func (d *Dev) Bytes() []byte {
	b := make([]byte, bufferSize)
	copy(b, d.img.Pix)
	return b
}

// DrawBitmap replaces the framebuffer with bitmap, which must be exactly the
// framebuffer size.
func (d *Dev) DrawBitmap(bitmap []byte) {
	if len(bitmap) != bufferSize {
		panic(fmt.Sprintf("ssd1306: bitmap is %d bytes, want %d", len(bitmap), bufferSize))
	}
	copy(d.img.Pix, bitmap)
}

// Write replaces the framebuffer with pixels and displays it.
// The data must be exactly ScreenWidth() * ScreenHeight() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.state == Stopped {
		return 0, errHalted
	}
	if len(pixels) != bufferSize {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	d.DrawBitmap(pixels)
	d.Display()
	return len(pixels), nil
}

// Display pushes the framebuffer to the controller as one data message.
//
// The transport receives a snapshot, so drawing may resume immediately. At
// most two frames are in flight; Display blocks until one is released. With a
// transport that never completes its transfers, the third call blocks forever.
func (d *Dev) Display() {
	b := d.frames.Acquire(len(d.frame))
	copy(b, d.frame)
	d.send(b, d.frames)
}
