// Package font decodes the bitmap font tables rendered by the SSD1306 driver.
//
// A table starts with a 6-byte header
//
//	{glyph width, glyph height, first char, total chars, map width hi, map width lo}
//
// followed by the glyph bitmap. Fonts at most 8 pixels tall store each glyph
// as width consecutive column bytes. Taller fonts (multiple of 8 pixels) are
// laid out as a grid inside a bitmap whose rows are map width bytes wide; each
// glyph spans height/8 stacked rows of width bytes. In both layouts bit 0 of a
// byte is the top pixel.
package font

import (
	"errors"
	"fmt"
)

// HeaderSize is the size of the table header in bytes.
const HeaderSize = 6

// PageHeight is the number of pixel rows packed in one bitmap byte.
const PageHeight = 8

// Descriptor is the decoded table header.
type Descriptor struct {
	Width      uint8
	Height     uint8
	FirstChar  uint8
	TotalChars uint8
	// MapWidth is the width in bytes of one bitmap row. The header stores it
	// as the sum of its last two fields.
	MapWidth uint16
}

// Pages returns the number of 8-pixel rows a glyph spans.
func (d Descriptor) Pages() int {
	if d.Height <= PageHeight {
		return 1
	}
	return int(d.Height) / PageHeight
}

// MultiRow reports whether glyphs use the grid layout.
func (d Descriptor) MultiRow() bool {
	return d.Height > PageHeight
}

// Contains reports whether c has a glyph in the table.
func (d Descriptor) Contains(c byte) bool {
	return int(c) >= int(d.FirstChar) && int(c) < int(d.FirstChar)+int(d.TotalChars)
}

// dataSize returns the number of bitmap bytes the header promises.
func (d Descriptor) dataSize() int {
	if !d.MultiRow() {
		return int(d.Width) * int(d.TotalChars)
	}
	perRow := int(d.MapWidth) / int(d.Width)
	rows := (int(d.TotalChars) + perRow - 1) / perRow
	return rows * d.Pages() * int(d.MapWidth)
}

// Font is a validated, read-only font table.
type Font struct {
	Descriptor
	table []byte
}

// Parse decodes and validates a font table. The table is not copied.
func Parse(table []byte) (*Font, error) {
	if len(table) < HeaderSize {
		return nil, errors.New("font: table shorter than header")
	}
	d := Descriptor{
		Width:      table[0],
		Height:     table[1],
		FirstChar:  table[2],
		TotalChars: table[3],
		MapWidth:   uint16(table[4]) + uint16(table[5]),
	}
	if d.Width == 0 || d.Height == 0 {
		return nil, fmt.Errorf("font: invalid glyph size %dx%d", d.Width, d.Height)
	}
	if d.TotalChars == 0 {
		return nil, errors.New("font: table has no glyphs")
	}
	if d.MultiRow() {
		if d.Height%PageHeight != 0 {
			return nil, fmt.Errorf("font: glyph height %d is not a multiple of %d", d.Height, PageHeight)
		}
		if d.MapWidth < uint16(d.Width) {
			return nil, fmt.Errorf("font: map width %d narrower than glyph width %d", d.MapWidth, d.Width)
		}
	}
	if need := HeaderSize + d.dataSize(); len(table) < need {
		return nil, fmt.Errorf("font: table has %d bytes, header requires %d", len(table), need)
	}
	return &Font{Descriptor: d, table: table}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(table []byte) *Font {
	f, err := Parse(table)
	if err != nil {
		panic(err)
	}
	return f
}

// Glyph returns the glyph index of c. It panics when c is outside
// [FirstChar, FirstChar+TotalChars).
func (f *Font) Glyph(c byte) int {
	if !f.Contains(c) {
		panic(fmt.Sprintf("font: character 0x%02X outside [0x%02X, 0x%02X)",
			c, f.FirstChar, int(f.FirstChar)+int(f.TotalChars)))
	}
	return int(c) - int(f.FirstChar)
}

// Column returns the bitmap byte of column col in page page of glyph g.
func (f *Font) Column(g, page, col int) byte {
	return f.table[HeaderSize+f.offset(g, page, col)]
}

// offset returns the position of a glyph byte relative to the end of the
// header.
func (f *Font) offset(g, page, col int) int {
	w := int(f.Width)
	if !f.MultiRow() {
		return g*w + col
	}
	mw := int(f.MapWidth)
	perRow := mw / w
	start := (g/perRow)*mw*f.Pages() + (g%perRow)*w
	return start + col + page*mw
}

// Table returns the raw table. It must not be modified.
func (f *Font) Table() []byte {
	return f.table
}
