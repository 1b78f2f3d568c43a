package engine

// NearestResize fills dst by index-mapped copy from src: each
// destination pixel takes the source pixel at floor((d+0.5)*S/D) along
// both axes. Pixels are copied verbatim, so no arithmetic or precision
// loss occurs. When the dimensions match, the resize degenerates to a
// row copy.
func NearestResize(dst, src Plane) {
	if dst.Width == src.Width && dst.Height == src.Height {
		CopyPlane(dst, src)
		return
	}

	ps := src.PixelSize

	// Source byte offset per destination column. The integer form
	// (2d+1)*S/(2D) equals floor((d+0.5)*S/D) without float error.
	xoff := make([]int, dst.Width)
	for dx := range xoff {
		xoff[dx] = ((2*dx + 1) * src.Width / (2 * dst.Width)) * ps
	}

	for dy := 0; dy < dst.Height; dy++ {
		sy := (2*dy + 1) * src.Height / (2 * dst.Height)
		srow := src.Row(sy)
		drow := dst.Row(dy)
		switch ps {
		case 1:
			for dx, o := range xoff {
				drow[dx] = srow[o]
			}
		case 4:
			for dx, o := range xoff {
				d := dx * 4
				drow[d] = srow[o]
				drow[d+1] = srow[o+1]
				drow[d+2] = srow[o+2]
				drow[d+3] = srow[o+3]
			}
		default:
			for dx, o := range xoff {
				copy(drow[dx*ps:(dx+1)*ps], srow[o:o+ps])
			}
		}
	}
}
