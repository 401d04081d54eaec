package ssd1306

// Line draws a line from (x0, y0) to (x1, y1), both ends included, with the
// integer Bresenham algorithm.
func (d *Dev) Line(x0, y0, x1, y1 uint8, c Color, m Mode) {
	d.line(int(x0), int(y0), int(x1), int(y1), c, m)
}

func (d *Dev) line(x0, y0, x1, y1 int, c Color, m Mode) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx >> 1
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			d.plot(y0, x0, c, m)
		} else {
			d.plot(x0, y0, c, m)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// LineH draws a horizontal line of w pixels starting at (x, y).
func (d *Dev) LineH(x, y, w uint8, c Color, m Mode) {
	d.lineH(int(x), int(y), int(w), c, m)
}

func (d *Dev) lineH(x, y, w int, c Color, m Mode) {
	for i := 0; i < w; i++ {
		d.plot(x+i, y, c, m)
	}
}

// LineV draws a vertical line of h pixels starting at (x, y).
func (d *Dev) LineV(x, y, h uint8, c Color, m Mode) {
	d.lineV(int(x), int(y), int(h), c, m)
}

func (d *Dev) lineV(x, y, h int, c Color, m Mode) {
	for i := 0; i < h; i++ {
		d.plot(x, y+i, c, m)
	}
}

// Rect draws the outline of a w x h rectangle with its top left corner at
// (x, y). Every pixel is plotted once so XOR outlines stay intact.
func (d *Dev) Rect(x, y, w, h uint8, c Color, m Mode) {
	if w == 0 || h == 0 {
		return
	}
	ix, iy, iw, ih := int(x), int(y), int(w), int(h)
	d.lineH(ix, iy, iw, c, m)
	if ih > 1 {
		d.lineH(ix, iy+ih-1, iw, c, m)
	}
	if ih <= 2 {
		return
	}
	d.lineV(ix, iy+1, ih-2, c, m)
	if iw > 1 {
		d.lineV(ix+iw-1, iy+1, ih-2, c, m)
	}
}

// RectFill draws a filled w x h rectangle with its top left corner at (x, y).
func (d *Dev) RectFill(x, y, w, h uint8, c Color, m Mode) {
	for i := 0; i < int(w); i++ {
		d.lineV(int(x)+i, int(y), int(h), c, m)
	}
}

// Circle draws the outline of a circle of radius r centered on (x, y) with
// the midpoint algorithm.
//
// Points where octants meet are plotted twice, so XOR outlines may have gaps.
func (d *Dev) Circle(x, y, r uint8, c Color, m Mode) {
	cx, cy := int(x), int(y)
	f := 1 - int(r)
	ddFx := 1
	ddFy := -2 * int(r)
	x1 := 0
	y1 := int(r)

	d.plot(cx, cy+y1, c, m)
	d.plot(cx, cy-y1, c, m)
	d.plot(cx+y1, cy, c, m)
	d.plot(cx-y1, cy, c, m)

	for x1 < y1 {
		if f >= 0 {
			y1--
			ddFy += 2
			f += ddFy
		}
		x1++
		ddFx += 2
		f += ddFx

		d.plot(cx+x1, cy+y1, c, m)
		d.plot(cx-x1, cy+y1, c, m)
		d.plot(cx+x1, cy-y1, c, m)
		d.plot(cx-x1, cy-y1, c, m)

		d.plot(cx+y1, cy+x1, c, m)
		d.plot(cx-y1, cy+x1, c, m)
		d.plot(cx+y1, cy-x1, c, m)
		d.plot(cx-y1, cy-x1, c, m)
	}
}

// CircleFill draws a filled circle of radius r centered on (x, y).
//
// The spans overlap, which would toggle pixels several times, so XOR mode
// draws nothing.
func (d *Dev) CircleFill(x, y, r uint8, c Color, m Mode) {
	if m == XOR {
		return
	}
	cx, cy := int(x), int(y)
	f := 1 - int(r)
	ddFx := 1
	ddFy := -2 * int(r)
	x1 := 0
	y1 := int(r)

	d.lineV(cx, cy-y1, 2*y1+1, c, m)

	for x1 < y1 {
		if f >= 0 {
			y1--
			ddFy += 2
			f += ddFy
		}
		x1++
		ddFx += 2
		f += ddFx

		d.lineV(cx+x1, cy-y1, 2*y1+1, c, m)
		d.lineV(cx-x1, cy-y1, 2*y1+1, c, m)
		d.lineV(cx+y1, cy-x1, 2*x1+1, c, m)
		d.lineV(cx-y1, cy-x1, 2*x1+1, c, m)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
