package ssd1306

import (
	"image"
	"image/color"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestDrawer(t *testing.T) {
	dev, rec, _ := newTestDev(t)

	if got, want := dev.Bounds(), image.Rect(0, 0, 64, 48); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if c := dev.ColorModel().Convert(color.White); c != image1bit.On {
		t.Errorf("ColorModel() converted white to %v", c)
	}

	src := image.NewUniform(color.White)
	if err := dev.Draw(image.Rect(60, 40, 80, 60), src, image.Point{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := lit(dev); got != 4*8 {
		t.Errorf("Draw() lit %d pixels, want %d", got, 4*8)
	}
	if len(rec.ops) != 1 || rec.ops[0].W[0] != 0x40 {
		t.Fatalf("Draw() should display the framebuffer once, sent %d messages", len(rec.ops))
	}

	if err := dev.Draw(image.Rect(70, 50, 80, 60), src, image.Point{}); err != nil {
		t.Errorf("Draw() off screen error = %v", err)
	}
	if len(rec.ops) != 1 {
		t.Error("Draw() off screen should not display")
	}

	gray := image.NewGray(image.Rect(0, 0, 64, 48))
	gray.SetGray(2, 3, color.Gray{Y: 0x20})
	gray.SetGray(4, 5, color.Gray{Y: 0xE0})
	if err := dev.Draw(dev.Bounds(), gray, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if dev.Get(2, 3) || !dev.Get(4, 5) || lit(dev) != 1 {
		t.Error("Draw() should threshold gray pixels at mid scale")
	}

	n := len(rec.ops)
	if err := dev.Halt(); err != nil {
		t.Errorf("Halt() error = %v", err)
	}
	equalWrites(t, rec.writes(n), cmds([]byte{0xAE}))
	if dev.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", dev.State())
	}
}

func TestDrawHalted(t *testing.T) {
	dev, rec, _ := newTestDev(t)
	dev.Start()
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	n := len(rec.ops)

	src := image.NewUniform(color.White)
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err == nil {
		t.Error("Draw() after Halt() should fail")
	}
	if _, err := dev.Write(make([]byte, bufferSize)); err == nil {
		t.Error("Write() after Halt() should fail")
	}
	if len(rec.ops) != n || lit(dev) != 0 {
		t.Error("halted display should not be drawn or sent frames")
	}

	dev.Start()
	if err := dev.Draw(dev.Bounds(), src, image.Point{}); err != nil {
		t.Errorf("Draw() after restart error = %v", err)
	}
	if lit(dev) != 64*48 {
		t.Error("Draw() after restart should fill the framebuffer")
	}
}

func TestDisplayer(t *testing.T) {
	dev, rec, _ := newTestDev(t)
	td := dev.Displayer()

	if w, h := td.Size(); w != 64 || h != 48 {
		t.Errorf("Size() = %dx%d, want 64x48", w, h)
	}
	td.SetPixel(5, 6, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	td.SetPixel(7, 8, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	td.SetPixel(7, 8, color.RGBA{A: 0xFF})
	td.SetPixel(-1, 100, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if !dev.Get(5, 6) || dev.Get(7, 8) || lit(dev) != 1 {
		t.Error("SetPixel() should set and clear framebuffer pixels")
	}
	if err := td.Display(); err != nil {
		t.Errorf("Display() error = %v", err)
	}
	if len(rec.ops) != 1 {
		t.Errorf("Display() sent %d messages, want 1", len(rec.ops))
	}
}
