package ssd1306

import "fmt"

const (
	setContrast           = 0x81
	displayAllOnResume    = 0xA4
	normalDisplay         = 0xA6
	invertDisplay         = 0xA7
	displayOff            = 0xAE
	displayOn             = 0xAF
	setDisplayOffset      = 0xD3
	setComPins            = 0xDA
	setVcomDeselect       = 0xDB
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setMultiplex          = 0xA8
	setStartLine          = 0x40
	comScanInc            = 0xC0
	comScanDec            = 0xC8
	segRemap              = 0xA0
	chargePump            = 0x8D
	setAddressingMode     = 0x20
	horizontalAddressing  = 0x00
	setColumnAddress      = 0x21
	setPageAddress        = 0x22
	activateScroll        = 0x2F
	deactivateScroll      = 0x2E
	setVerticalScrollArea = 0xA3
)

// Scroll setup commands.
const (
	rightHorizontalScroll = 0x26
	leftHorizontalScroll  = 0x27
	verticalRightScroll   = 0x29
	verticalLeftScroll    = 0x2A
)

// scrollInterval is the number of frames between scroll steps, as the
// controller encodes it (0x07 is 2 frames).
const scrollInterval = 0x07

// initSequence returns the power on configuration, one message per entry.
// The order and values are the ones recommended for the 64x48 panel.
func initSequence() [][]byte {
	return [][]byte{
		{displayOff},
		{setDisplayClockDiv, 0x80}, // Suggested ratio
		{setMultiplex, 0x2F},       // 48 lines
		{setDisplayOffset, 0x00},   // No offset
		{setStartLine | 0x00},      // Line 0
		{chargePump, 0x14},         // Enable the charge pump
		{normalDisplay},            //
		{displayAllOnResume},       // Display follows RAM
		{segRemap | 0x01},          // Column 127 is SEG0
		{comScanDec},               //
		{setComPins, 0x12},         // Alternative COM pins
		{setContrast, 0x8F},        //
		{setPrecharge, 0xF1},       //
		{setVcomDeselect, 0x40},    //
		{setAddressingMode},        //
		{horizontalAddressing},     //
		{setColumnAddress, columnOffset, columnOffset + screenWidth - 1},
		{setPageAddress, 0, pageCount - 1},
	}
}

// Start initializes the controller, clears the display and turns it on.
//
// It also resets the font to 0, the color to White, the mode to Normal and
// the cursor to (0, 0). Calling Start on a stopped display reinitializes it.
func (d *Dev) Start() {
	d.setState(Initializing)
	d.SetFont(0)
	d.color = White
	d.mode = Normal
	d.SetCursor(0, 0)

	for _, c := range initSequence() {
		d.command(c[0], c[1:]...)
	}
	d.Clear()
	d.Display()
	d.command(displayOn)
	d.setState(Active)
	d.log.Info("display started")
}

// Stop turns the display off. The framebuffer is preserved.
func (d *Dev) Stop() {
	d.command(displayOff)
	if d.state != Stopped {
		d.log.Info("display stopped")
	}
	d.setState(Stopped)
}

// Invert inverts the display colors (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) {
	if invert {
		d.command(invertDisplay)
		return
	}
	d.command(normalDisplay)
}

// Contrast sets the display contrast.
func (d *Dev) Contrast(contrast uint8) {
	d.command(setContrast)
	d.command(contrast)
}

// FlipVertical mirrors the display top to bottom.
func (d *Dev) FlipVertical(flip bool) {
	if flip {
		d.command(comScanInc)
		return
	}
	d.command(comScanDec)
}

// FlipHorizontal mirrors the display left to right.
func (d *Dev) FlipHorizontal(flip bool) {
	if flip {
		d.command(segRemap | 0x00)
		return
	}
	d.command(segRemap | 0x01)
}

// ScrollRight scrolls pages start to stop to the right. It panics unless
// start < stop.
func (d *Dev) ScrollRight(start, stop uint8) {
	d.scrollHorizontal(rightHorizontalScroll, start, stop)
}

// ScrollLeft scrolls pages start to stop to the left. It panics unless
// start < stop.
func (d *Dev) ScrollLeft(start, stop uint8) {
	d.scrollHorizontal(leftHorizontalScroll, start, stop)
}

// ScrollVertRight scrolls pages start to stop to the right while the whole
// display scrolls up one row per step. It panics unless start < stop.
func (d *Dev) ScrollVertRight(start, stop uint8) {
	d.scrollVertical(verticalRightScroll, start, stop)
}

// ScrollVertLeft is ScrollVertRight to the left.
func (d *Dev) ScrollVertLeft(start, stop uint8) {
	d.scrollVertical(verticalLeftScroll, start, stop)
}

// ScrollStop stops any scrolling.
func (d *Dev) ScrollStop() {
	d.command(deactivateScroll)
}

// scrollHorizontal deactivates the current scroll first, changing the
// parameters of an active scroll corrupts the controller RAM.
func (d *Dev) scrollHorizontal(op byte, start, stop uint8) {
	checkScrollRange(start, stop)
	d.ScrollStop()
	// <op>, dummy, <start page>, <interval>, <end page>, dummy, dummy, <enable>
	for _, b := range []byte{op, 0x00, start, scrollInterval, stop, 0x00, 0xFF, activateScroll} {
		d.command(b)
	}
}

func (d *Dev) scrollVertical(op byte, start, stop uint8) {
	checkScrollRange(start, stop)
	d.ScrollStop()
	// No fixed rows, the whole panel scrolls vertically.
	d.command(setVerticalScrollArea, 0x00, screenHeight)
	// <op>, dummy, <start page>, <interval>, <end page>, <vertical offset>, <enable>
	for _, b := range []byte{op, 0x00, start, scrollInterval, stop, 0x01, activateScroll} {
		d.command(b)
	}
}

func checkScrollRange(start, stop uint8) {
	if start >= stop {
		panic(fmt.Sprintf("ssd1306: scroll start %d must be lower than stop %d", start, stop))
	}
}
