package font

import (
	"errors"
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes the characters [first, first+total) of face into a
// table with w x h cells.
//
// Faces up to 8 pixels tall produce the single page layout. Taller cells must
// be a multiple of 8 pixels and are packed perRow glyphs per bitmap row.
// Glyphs are vertically centered on the face's ascent and descent; pixels with
// coverage of at least 50% are lit.
func FromFace(face xfont.Face, w, h int, first, total byte, perRow int) ([]byte, error) {
	if w <= 0 || w > 255 || h <= 0 || h > 255 {
		return nil, fmt.Errorf("font: invalid cell size %dx%d", w, h)
	}
	if total == 0 {
		return nil, errors.New("font: no glyphs requested")
	}
	multi := h > PageHeight
	if multi && h%PageHeight != 0 {
		return nil, fmt.Errorf("font: cell height %d is not a multiple of %d", h, PageHeight)
	}
	if !multi {
		perRow = int(total)
	}
	if perRow <= 0 {
		return nil, fmt.Errorf("font: invalid glyphs per row %d", perRow)
	}
	mapWidth := perRow * w
	if mapWidth > 2*255 {
		return nil, fmt.Errorf("font: map width %d does not fit the header", mapWidth)
	}
	pages := 1
	if multi {
		pages = h / PageHeight
	}
	rows := (int(total) + perRow - 1) / perRow

	lo := mapWidth
	if lo > 255 {
		lo = 255
	}
	table := make([]byte, HeaderSize, HeaderSize+rows*pages*mapWidth)
	table[0] = byte(w)
	table[1] = byte(h)
	table[2] = first
	table[3] = total
	table[4] = byte(mapWidth - lo)
	table[5] = byte(lo)
	table = append(table, make([]byte, rows*pages*mapWidth)...)
	f := &Font{
		Descriptor: Descriptor{
			Width:      byte(w),
			Height:     byte(h),
			FirstChar:  first,
			TotalChars: total,
			MapWidth:   uint16(mapWidth),
		},
		table: table,
	}

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := ascent
	if margin := (pages*PageHeight - ascent - descent) / 2; margin > 0 {
		baseline += margin
	}

	cell := image.NewAlpha(image.Rect(0, 0, w, pages*PageHeight))
	d := xfont.Drawer{Dst: cell, Src: image.White, Face: face}
	for g := 0; g < int(total); g++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		d.Dot = fixed.P(0, baseline)
		d.DrawString(string(rune(int(first) + g)))
		for page := 0; page < pages; page++ {
			for col := 0; col < w; col++ {
				var b byte
				for bit := 0; bit < PageHeight; bit++ {
					if cell.AlphaAt(col, page*PageHeight+bit).A >= 0x80 {
						b |= 1 << uint(bit)
					}
				}
				table[HeaderSize+f.offset(g, page, col)] = b
			}
		}
	}
	return table, nil
}
