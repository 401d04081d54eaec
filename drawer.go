package ssd1306

import (
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// BasicDisplay is the drawing and control surface of a monochrome page
// addressed display. *Dev implements it.
type BasicDisplay interface {
	Start()
	Stop()

	Clear()
	ClearAndDisplay()
	Invert(invert bool)
	Contrast(contrast uint8)
	SetCursor(x, y uint8)

	Pixel(x, y uint8, c Color, m Mode)
	Line(x0, y0, x1, y1 uint8, c Color, m Mode)
	Rect(x, y, w, h uint8, c Color, m Mode)
	RectFill(x, y, w, h uint8, c Color, m Mode)
	Circle(x, y, r uint8, c Color, m Mode)
	CircleFill(x, y, r uint8, c Color, m Mode)
	DrawChar(x, y uint8, ch byte, c Color, m Mode)
	PutChar(ch byte)
	DrawBitmap(bitmap []byte)
	ScreenWidth() uint8
	ScreenHeight() uint8

	ScrollRight(start, stop uint8)
	ScrollLeft(start, stop uint8)
	ScrollVertRight(start, stop uint8)
	ScrollVertLeft(start, stop uint8)
	ScrollStop()

	FlipVertical(flip bool)
	FlipHorizontal(flip bool)

	Display()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Rect
}

// Draw implements display.Drawer.
//
// src is converted to 1 bit, copied into the framebuffer and displayed.
// Transfer errors are reported by Err. It fails once the display is halted,
// until Start turns it back on.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.state == Stopped {
		return errHalted
	}
	dst = dst.Intersect(d.img.Rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(&d.img, dst, src, sp, draw.Src)
	d.Display()
	return nil
}

// Halt implements conn.Resource. It turns the display off.
func (d *Dev) Halt() error {
	d.Stop()
	return nil
}

// Displayer returns d as a TinyGo displayer, so TinyGo drawing libraries can
// render into the framebuffer.
func (d *Dev) Displayer() drivers.Displayer {
	return tinyDisplay{d}
}

type tinyDisplay struct {
	d *Dev
}

func (t tinyDisplay) Size() (x, y int16) {
	return screenWidth, screenHeight
}

func (t tinyDisplay) SetPixel(x, y int16, c color.RGBA) {
	col := Black
	if image1bit.BitModel.Convert(c).(image1bit.Bit) {
		col = White
	}
	t.d.plot(int(x), int(y), col, Normal)
}

func (t tinyDisplay) Display() error {
	t.d.Display()
	return t.d.Err()
}

var (
	_ BasicDisplay   = &Dev{}
	_ display.Drawer = &Dev{}
)
