package font

import (
	"sync"

	"github.com/hajimehoshi/bitmapfont/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	builtinOnce sync.Once
	builtin     []*Font
)

// Builtin returns the fonts shipped with the driver, in selection order:
//
//	0: 5x7 ASCII, single page
//	1: 8x16 ASCII rasterized from basicfont.Face7x13
//	2: 6x16 ASCII rasterized from the 12px bitmapfont face
//
// Tables are decoded once and shared; they must not be modified.
func Builtin() []*Font {
	builtinOnce.Do(func() {
		t8x16, err := FromFace(basicfont.Face7x13, 8, 16, 0x20, 96, 16)
		if err != nil {
			panic(err)
		}
		t6x16, err := FromFace(bitmapfont.Face, 6, 16, 0x20, 96, 32)
		if err != nil {
			panic(err)
		}
		builtin = []*Font{
			MustParse(Font5x7),
			MustParse(t8x16),
			MustParse(t6x16),
		}
	})
	return builtin
}

// Count returns the number of built-in fonts.
func Count() int {
	return len(Builtin())
}
