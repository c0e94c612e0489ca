package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Preprocessor improves scanned pages before recognition.
type Preprocessor struct {
	// Contrast is the contrast gain applied around mid-gray.
	Contrast float64

	// Sharpen enables a 3x3 unsharp kernel after the contrast pass.
	Sharpen bool

	// Upscale is the integer scale factor applied with Catmull-Rom
	// resampling. 1 disables upscaling.
	Upscale int
}

// NewPreprocessor returns the settings used for the disclosure corpus.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		Contrast: 1.5,
		Sharpen:  true,
		Upscale:  3,
	}
}

// Run applies the configured pipeline and returns a grayscale image.
func (p *Preprocessor) Run(img image.Image) *image.Gray {
	gray := ToGray(img)
	if p.Upscale > 1 {
		gray = UpscaleGray(gray, p.Upscale)
	}
	if p.Contrast != 1 {
		gray = AdjustContrast(gray, p.Contrast)
	}
	if p.Sharpen {
		gray = SharpenGray(gray)
	}
	return gray
}

// ToGray converts any image to 8-bit grayscale.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	xdraw.Draw(gray, b, img, b.Min, xdraw.Src)
	return gray
}

// UpscaleGray scales the image up by an integer factor using Catmull-Rom
// interpolation, matching the cubic upscale the OCR grid pass needs for
// thin table lines.
func UpscaleGray(g *image.Gray, factor int) *image.Gray {
	b := g.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), g, b, xdraw.Src, nil)
	return dst
}

// AdjustContrast scales pixel values around mid-gray by the given factor.
func AdjustContrast(g *image.Gray, factor float64) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(g.GrayAt(x, y).Y)
			v = (v-128)*factor + 128
			out.SetGray(x, y, color.Gray{Y: clamp8(v)})
		}
	}
	return out
}

// SharpenGray applies a 3x3 sharpening convolution (center 5, cross -1).
func SharpenGray(g *image.Gray) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x == b.Min.X || y == b.Min.Y || x == b.Max.X-1 || y == b.Max.Y-1 {
				out.SetGray(x, y, g.GrayAt(x, y))
				continue
			}
			v := 5*int(g.GrayAt(x, y).Y) -
				int(g.GrayAt(x-1, y).Y) - int(g.GrayAt(x+1, y).Y) -
				int(g.GrayAt(x, y-1).Y) - int(g.GrayAt(x, y+1).Y)
			out.SetGray(x, y, color.Gray{Y: clamp8(float64(v))})
		}
	}
	return out
}

// Crop returns a copy of the sub-image bounded by r.
func Crop(g *image.Gray, r image.Rectangle) *image.Gray {
	r = r.Intersect(g.Bounds())
	out := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			out.SetGray(x, y, g.GrayAt(r.Min.X+x, r.Min.Y+y))
		}
	}
	return out
}

// EncodePNG renders an image as PNG bytes for the OCR client.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clamp8(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
