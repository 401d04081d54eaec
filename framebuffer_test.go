package ssd1306

import (
	"bytes"
	"testing"
)

// lit counts the lit pixels of the framebuffer.
func lit(d *Dev) int {
	n := 0
	for x := 0; x < screenWidth; x++ {
		for y := 0; y < screenHeight; y++ {
			if d.Get(uint8(x), uint8(y)) {
				n++
			}
		}
	}
	return n
}

func TestPixel(t *testing.T) {
	dev, _, _ := newTestDev(t)

	for x := uint8(0); x < screenWidth; x++ {
		for y := uint8(0); y < screenHeight; y++ {
			dev.Pixel(x, y, White, Normal)
			if !dev.Get(x, y) {
				t.Fatalf("Pixel(%d, %d, White) left the pixel dark", x, y)
			}
			dev.Pixel(x, y, Black, Normal)
			if dev.Get(x, y) {
				t.Fatalf("Pixel(%d, %d, Black) left the pixel lit", x, y)
			}
		}
	}
}

func TestPixelLayout(t *testing.T) {
	tests := []struct {
		x, y  uint8
		index int
		mask  byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{1, 0, 1, 0x01},
		{63, 0, 63, 0x01},
		{0, 8, 64, 0x01},
		{10, 13, 74, 0x20},
		{63, 47, 383, 0x80},
	}

	for _, tt := range tests {
		dev, _, _ := newTestDev(t)
		dev.Pixel(tt.x, tt.y, White, Normal)
		want := make([]byte, bufferSize)
		want[tt.index] = tt.mask
		if got := dev.Bytes(); !bytes.Equal(got, want) {
			t.Errorf("Pixel(%d, %d) set byte %d to 0x%02X, want 0x%02X", tt.x, tt.y, tt.index, got[tt.index], tt.mask)
		}
	}
}

func TestPixelXOR(t *testing.T) {
	dev, _, _ := newTestDev(t)
	dev.RectFill(0, 0, 32, 48, White, Normal)
	before := dev.Bytes()

	for x := uint8(0); x < screenWidth; x++ {
		for y := uint8(0); y < screenHeight; y++ {
			dev.Pixel(x, y, White, XOR)
			if dev.Get(x, y) == (x < 32) {
				t.Fatalf("Pixel(%d, %d, White, XOR) did not toggle", x, y)
			}
			dev.Pixel(x, y, White, XOR)
		}
	}
	if !bytes.Equal(dev.Bytes(), before) {
		t.Error("two XOR draws should restore the framebuffer")
	}

	for x := uint8(0); x < screenWidth; x++ {
		for y := uint8(0); y < screenHeight; y++ {
			dev.Pixel(x, y, Black, XOR)
		}
	}
	if !bytes.Equal(dev.Bytes(), before) {
		t.Error("XOR with Black should leave the framebuffer unchanged")
	}
}

func TestPixelOutOfRange(t *testing.T) {
	dev, _, _ := newTestDev(t)
	dev.ClearTo(0x5A)
	before := dev.Bytes()

	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			if x < screenWidth && y < screenHeight {
				continue
			}
			dev.Pixel(uint8(x), uint8(y), White, Normal)
			dev.Pixel(uint8(x), uint8(y), Black, Normal)
			dev.Pixel(uint8(x), uint8(y), White, XOR)
		}
	}
	if !bytes.Equal(dev.Bytes(), before) {
		t.Error("off screen pixels changed the framebuffer")
	}
	if dev.Get(200, 3) {
		t.Error("Get() off screen should report a dark pixel")
	}
}

func TestClearTo(t *testing.T) {
	dev, rec, _ := newTestDev(t)

	for _, v := range []byte{0xFF, 0xA5, 0x00} {
		dev.ClearTo(v)
		if got, want := dev.Bytes(), bytes.Repeat([]byte{v}, bufferSize); !bytes.Equal(got, want) {
			t.Errorf("ClearTo(0x%02X) left other bytes in the framebuffer", v)
		}
	}
	dev.ClearTo(0xFF)
	dev.Clear()
	if lit(dev) != 0 {
		t.Error("Clear() should turn every pixel off")
	}
	if len(rec.ops) != 0 {
		t.Errorf("clearing sent %d messages, want 0", len(rec.ops))
	}
}

func TestClearAndDisplay(t *testing.T) {
	dev, rec, _ := newTestDev(t)
	dev.ClearTo(0xFF)
	dev.ClearAndDisplay()

	if len(rec.ops) != 1 {
		t.Fatalf("ClearAndDisplay() sent %d messages, want 1", len(rec.ops))
	}
	want := make([]byte, bufferSize+1)
	want[0] = 0x40
	if !bytes.Equal(rec.ops[0].W, want) {
		t.Error("ClearAndDisplay() should send an empty frame")
	}
}

func TestDrawBitmap(t *testing.T) {
	dev, rec, _ := newTestDev(t)
	bitmap := make([]byte, bufferSize)
	for i := range bitmap {
		bitmap[i] = byte(i * 7)
	}
	dev.DrawBitmap(bitmap)
	if !bytes.Equal(dev.Bytes(), bitmap) {
		t.Error("Bytes() should return the bitmap that was drawn")
	}
	if len(rec.ops) != 0 {
		t.Error("DrawBitmap() should not update the display")
	}

	dev.Display()
	if len(rec.ops) != 1 {
		t.Fatalf("Display() sent %d messages, want 1", len(rec.ops))
	}
	if got := rec.ops[0].W; got[0] != 0x40 || !bytes.Equal(got[1:], bitmap) {
		t.Error("Display() should send the data marker followed by the framebuffer")
	}

	defer func() {
		if recover() == nil {
			t.Error("DrawBitmap() with a short bitmap should panic")
		}
	}()
	dev.DrawBitmap(bitmap[1:])
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"exact", bufferSize, false},
		{"short", bufferSize - 1, true},
		{"long", bufferSize + 1, true},
		{"empty", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec, _ := newTestDev(t)
			pixels := bytes.Repeat([]byte{0x81}, tt.size)
			n, err := dev.Write(pixels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Write() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if n != 0 || len(rec.ops) != 0 {
					t.Errorf("failed Write() wrote %d bytes and sent %d messages", n, len(rec.ops))
				}
				return
			}
			if n != bufferSize || len(rec.ops) != 1 {
				t.Errorf("Write() = %d with %d messages, want %d with 1", n, len(rec.ops), bufferSize)
			}
		})
	}
}

func TestDisplaySnapshot(t *testing.T) {
	logger := discardLogger()
	h := &holder{}
	dev, err := New(h, &Opts{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	dev.ClearTo(0xFF)
	dev.Display()
	dev.Clear()
	if len(h.ops) != 1 {
		t.Fatalf("Display() sent %d messages, want 1", len(h.ops))
	}
	if !bytes.Equal(h.ops[0].W[1:], bytes.Repeat([]byte{0xFF}, bufferSize)) {
		t.Error("drawing after Display() changed the frame in flight")
	}

	dev.Display()
	if got := dev.frames.Available(); got != 0 {
		t.Errorf("frames available = %d, want 0", got)
	}
	h.complete(nil)
	if got := dev.frames.Available(); got != frameBlocks {
		t.Errorf("frames available after completion = %d, want %d", got, frameBlocks)
	}
}

func TestDrawingOffScreen(t *testing.T) {
	tests := []struct {
		name string
		f    func(d *Dev)
	}{
		{"line", func(d *Dev) { d.Line(200, 10, 250, 40, White, Normal) }},
		{"line below", func(d *Dev) { d.Line(0, 100, 63, 200, White, XOR) }},
		{"horizontal line", func(d *Dev) { d.LineH(200, 5, 40, Black, Normal) }},
		{"vertical line", func(d *Dev) { d.LineV(5, 60, 40, White, Normal) }},
		{"rect", func(d *Dev) { d.Rect(200, 5, 20, 20, White, Normal) }},
		{"rect fill", func(d *Dev) { d.RectFill(200, 60, 30, 30, Black, Normal) }},
		{"circle", func(d *Dev) { d.Circle(200, 100, 10, White, XOR) }},
		{"circle fill", func(d *Dev) { d.CircleFill(200, 24, 20, White, Normal) }},
		{"char", func(d *Dev) { d.DrawChar(200, 0, 'A', White, Normal) }},
		{"char below", func(d *Dev) { d.DrawChar(0, 100, 'A', Black, Normal) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, _, _ := newTestDev(t)
			for i := range dev.img.Pix {
				dev.img.Pix[i] = byte(i * 13)
			}
			before := dev.Bytes()
			tt.f(dev)
			if !bytes.Equal(dev.Bytes(), before) {
				t.Error("drawing off screen changed the framebuffer")
			}
		})
	}
}
