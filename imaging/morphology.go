package imaging

import "image"

// binaryImage is a compact 0/1 raster used by the morphological passes.
type binaryImage struct {
	w, h int
	pix  []uint8
}

func newBinaryImage(w, h int) *binaryImage {
	return &binaryImage{w: w, h: h, pix: make([]uint8, w*h)}
}

func (b *binaryImage) at(x, y int) bool {
	return b.pix[y*b.w+x] != 0
}

func (b *binaryImage) set(x, y int) {
	b.pix[y*b.w+x] = 1
}

// erodeH erodes with a k-by-1 horizontal kernel: a pixel survives only when
// its whole horizontal window is set. Implemented with per-row running sums
// so the kernel width does not multiply the cost.
func erodeH(src *binaryImage, k int) *binaryImage {
	return slideH(src, k, func(sum, width int) bool { return sum == width })
}

// dilateH dilates with a k-by-1 horizontal kernel.
func dilateH(src *binaryImage, k int) *binaryImage {
	return slideH(src, k, func(sum, _ int) bool { return sum > 0 })
}

// erodeV erodes with a 1-by-k vertical kernel.
func erodeV(src *binaryImage, k int) *binaryImage {
	return slideV(src, k, func(sum, height int) bool { return sum == height })
}

// dilateV dilates with a 1-by-k vertical kernel.
func dilateV(src *binaryImage, k int) *binaryImage {
	return slideV(src, k, func(sum, _ int) bool { return sum > 0 })
}

func slideH(src *binaryImage, k int, keep func(sum, width int) bool) *binaryImage {
	out := newBinaryImage(src.w, src.h)
	half := k / 2
	for y := 0; y < src.h; y++ {
		row := src.pix[y*src.w : (y+1)*src.w]
		prefix := make([]int, src.w+1)
		for x := 0; x < src.w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < src.w; x++ {
			x0 := x - half
			x1 := x + (k - half - 1)
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= src.w {
				x1 = src.w - 1
			}
			if keep(prefix[x1+1]-prefix[x0], x1-x0+1) {
				out.set(x, y)
			}
		}
	}
	return out
}

func slideV(src *binaryImage, k int, keep func(sum, height int) bool) *binaryImage {
	out := newBinaryImage(src.w, src.h)
	half := k / 2
	for x := 0; x < src.w; x++ {
		prefix := make([]int, src.h+1)
		for y := 0; y < src.h; y++ {
			prefix[y+1] = prefix[y] + int(src.pix[y*src.w+x])
		}
		for y := 0; y < src.h; y++ {
			y0 := y - half
			y1 := y + (k - half - 1)
			if y0 < 0 {
				y0 = 0
			}
			if y1 >= src.h {
				y1 = src.h - 1
			}
			if keep(prefix[y1+1]-prefix[y0], y1-y0+1) {
				out.set(x, y)
			}
		}
	}
	return out
}

// integral is a summed-area table over an 8-bit grayscale image.
type integral struct {
	w, h int
	sums []int
}

func integralImage(gray *image.Gray) *integral {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	it := &integral{w: w, h: h, sums: make([]int, (w+1)*(h+1))}
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += int(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			it.sums[(y+1)*(w+1)+x+1] = it.sums[y*(w+1)+x+1] + rowSum
		}
	}
	return it
}

// sum returns the pixel sum over the inclusive rectangle [x0,x1]x[y0,y1].
func (it *integral) sum(x0, y0, x1, y1 int) int {
	w := it.w + 1
	return it.sums[(y1+1)*w+x1+1] - it.sums[y0*w+x1+1] -
		it.sums[(y1+1)*w+x0] + it.sums[y0*w+x0]
}
