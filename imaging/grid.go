package imaging

import (
	"image"
	"sort"
)

// GridLines holds the detected table boundaries in pixel coordinates.
type GridLines struct {
	Xs []int // column boundaries, ascending
	Ys []int // row boundaries, ascending
}

// RowCount returns the number of cell rows between the boundaries.
func (g *GridLines) RowCount() int {
	if len(g.Ys) < 2 {
		return 0
	}
	return len(g.Ys) - 1
}

// ColCount returns the number of cell columns between the boundaries.
func (g *GridLines) ColCount() int {
	if len(g.Xs) < 2 {
		return 0
	}
	return len(g.Xs) - 1
}

// CellRect returns the pixel rectangle of the cell at (row, col), or an
// empty rectangle when out of range.
func (g *GridLines) CellRect(row, col int) image.Rectangle {
	if row < 0 || row >= g.RowCount() || col < 0 || col >= g.ColCount() {
		return image.Rectangle{}
	}
	return image.Rect(g.Xs[col], g.Ys[row], g.Xs[col+1], g.Ys[row+1])
}

// GridDetector finds ruled table grids in binarized page images by isolating
// long horizontal and vertical strokes and intersecting them.
type GridDetector struct {
	// HorizontalScale divides the image width to size the horizontal
	// line kernel: only strokes at least width/HorizontalScale long
	// survive the opening.
	HorizontalScale int

	// VerticalScale divides the image height for the vertical kernel.
	VerticalScale int

	// ThresholdBlock is the window size of the adaptive mean threshold.
	ThresholdBlock int

	// ThresholdBias is added to the local mean; a negative bias keeps
	// faint strokes.
	ThresholdBias int

	// MergeGap merges crossing coordinates closer than this many pixels
	// into one boundary.
	MergeGap int
}

// NewGridDetector returns a detector tuned for the scanned disclosures.
func NewGridDetector() *GridDetector {
	return &GridDetector{
		HorizontalScale: 40,
		VerticalScale:   20,
		ThresholdBlock:  35,
		ThresholdBias:   5,
		MergeGap:        4,
	}
}

// Detect locates the table grid in a grayscale page. It returns nil when no
// plausible grid (at least 2x2 cells) is found.
func (d *GridDetector) Detect(gray *image.Gray) *GridLines {
	bin := d.binarize(gray)
	if bin.w == 0 || bin.h == 0 {
		return nil
	}

	hKernel := bin.w / d.HorizontalScale
	vKernel := bin.h / d.VerticalScale
	if hKernel < 2 || vKernel < 2 {
		return nil
	}

	// Opening with a wide kernel keeps only horizontal strokes, with a
	// tall kernel only vertical ones.
	horizontal := dilateH(erodeH(bin, hKernel), hKernel)
	vertical := dilateV(erodeV(bin, vKernel), vKernel)

	xs, ys := intersections(horizontal, vertical)
	if len(xs) == 0 {
		return nil
	}

	grid := &GridLines{
		Xs: clusterCoords(xs, d.MergeGap),
		Ys: clusterCoords(ys, d.MergeGap),
	}
	if grid.RowCount() < 2 || grid.ColCount() < 2 {
		return nil
	}
	return grid
}

// binarize applies an inverted adaptive mean threshold: ink (dark pixels
// standing out from their neighborhood) becomes 1, paper becomes 0.
func (d *GridDetector) binarize(gray *image.Gray) *binaryImage {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	bin := newBinaryImage(w, h)

	integral := integralImage(gray)
	half := d.ThresholdBlock / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			area := (x1 - x0 + 1) * (y1 - y0 + 1)
			sum := integral.sum(x0, y0, x1, y1)
			mean := sum / area
			// Inverted source: dark ink is high. Pixel is ink when
			// its inverted value exceeds the local mean plus bias.
			inv := 255 - int(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if inv > (255-mean)+d.ThresholdBias {
				bin.set(x, y)
			}
		}
	}
	return bin
}

// intersections collects the coordinates where the horizontal and vertical
// line masks overlap.
func intersections(h, v *binaryImage) (xs, ys []int) {
	for y := 0; y < h.h; y++ {
		for x := 0; x < h.w; x++ {
			if h.at(x, y) && v.at(x, y) {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}
	return xs, ys
}

// clusterCoords sorts coordinates and merges neighbors within gap pixels,
// returning one representative per cluster.
func clusterCoords(coords []int, gap int) []int {
	if len(coords) == 0 {
		return nil
	}
	sorted := make([]int, len(coords))
	copy(sorted, coords)
	sort.Ints(sorted)

	var out []int
	prev := sorted[0]
	for _, c := range sorted[1:] {
		if c-prev > gap {
			out = append(out, prev)
		}
		prev = c
	}
	out = append(out, prev)
	return out
}
