// Package ssd1306 controls a 64x48 SSD1306 micro OLED display via I²C.
//
// The SSD1306 is a 1-bit OLED controller with a 128x64 internal RAM. This
// driver targets the 64x48 panel, which maps to RAM columns 32 to 95 and the
// first 6 pages. It implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - Monochrome, one bit per pixel
// - 64×48 pixels, 6 pages of 8 rows
// - Hardware scrolling (horizontal and diagonal)
// - Adjustable contrast (0-255)
// - Display inversion and flipping on both axes
//
// # Hardware Connection
//
// Connect the display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//	D/C         → GND for address 0x3C, 3.3V for 0x3D
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"github.com/flavioheleno/ssd1306"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
//		defer dev.Close()
//
//		dev.Start()
//		dev.Circle(32, 24, 20, ssd1306.White, ssd1306.Normal)
//		dev.SetCursor(0, 0)
//		dev.Print("Hello")
//		dev.Display()
//	}
//
// # Framebuffer
//
// Every drawing call only touches the framebuffer kept in memory. Nothing
// reaches the display until Display is called, which sends the whole frame
// as a single 385 byte I²C message.
//
// Pixels are drawn in one of two colors and one of two modes:
//
//	dev.Pixel(x, y, ssd1306.White, ssd1306.Normal) // Light
//	dev.Pixel(x, y, ssd1306.Black, ssd1306.Normal) // Darken
//	dev.Pixel(x, y, ssd1306.White, ssd1306.XOR)    // Toggle
//
// Coordinates outside the screen are ignored, so shapes crossing an edge are
// clipped.
//
// # Text
//
// Three fonts are built in: a 5x7 font (index 0), an 8x16 font (1) and a
// 6x16 font (2). PutChar and Print write at the cursor and wrap at the right
// edge:
//
//	dev.SetFont(1)
//	dev.SetCursor(0, 16)
//	dev.Printf("%d°C", 21)
//
// Custom fonts use the same table layout; see the font package.
//
// # Transfers
//
// I²C transfers never block drawing. NewI2C runs them on a dedicated
// goroutine; New accepts any Transport, such as SyncTransport. Failures are
// logged through logrus and the first one is returned by Err:
//
//	dev.Display()
//	if err := dev.Err(); err != nil {
//		log.Println(err)
//	}
//
// # Hardware Scrolling
//
//	dev.ScrollRight(0, 5)
//	time.Sleep(5 * time.Second)
//	dev.ScrollStop()
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// # Compatibility
//
// Besides display.Drawer, Displayer adapts the device to the TinyGo
// drivers.Displayer interface.
package ssd1306
