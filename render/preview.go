package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/vector"

	"github.com/vrdraw/vrdraw/model"
)

const (
	// previews are drawn oversized and scaled down
	supersample = 4
	margin      = 0.1
	penWidth    = 3.0
)

// Preview rasterizes a stroke into a size x size image, dark ink on white.
// Points of different stroke ids are not joined.
func Preview(stroke model.Stroke, size int, ink color.Color) image.Image {
	if size < 1 {
		size = 1
	}
	canvas := size * supersample

	mask := image.NewAlpha(image.Rect(0, 0, canvas, canvas))
	if len(stroke) > 0 {
		r := vector.NewRasterizer(canvas, canvas)
		fit := newFitter(stroke, float64(canvas))
		pen := float32(penWidth * supersample / 2)

		for i, p := range stroke {
			x, y := fit.apply(p)
			if i == 0 || stroke[i-1].StrokeID != p.StrokeID {
				dot(r, x, y, pen)
				continue
			}
			px, py := fit.apply(stroke[i-1])
			segment(r, px, py, x, y, pen)
			dot(r, x, y, pen)
		}
		r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}

	out := image.NewRGBA(mask.Bounds())
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(out, out.Bounds(), image.NewUniform(ink), image.Point{}, mask, image.Point{}, draw.Over)

	return resize.Thumbnail(uint(size), uint(size), out, resize.Bilinear)
}

// WritePNG encodes a stroke preview
func WritePNG(w io.Writer, stroke model.Stroke, size int) error {
	return png.Encode(w, Preview(stroke, size, color.Black))
}

// fitter maps stroke space into the canvas keeping the aspect ratio.
// Stroke y grows upwards, image y downwards.
type fitter struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func newFitter(stroke model.Stroke, canvas float64) fitter {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range stroke {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	inner := canvas * (1 - 2*margin)
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = inner / extent
	}

	return fitter{
		minX:  minX,
		maxY:  maxY,
		scale: scale,
		offX:  (canvas - (maxX-minX)*scale) / 2,
		offY:  (canvas - (maxY-minY)*scale) / 2,
	}
}

func (f fitter) apply(p model.Point) (float32, float32) {
	x := (p.X-f.minX)*f.scale + f.offX
	y := (f.maxY-p.Y)*f.scale + f.offY
	return float32(x), float32(y)
}

// segment fills the quad around a to b
func segment(r *vector.Rasterizer, ax, ay, bx, by, half float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half

	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

// dot fills a square joint so polylines have no gaps at corners.
// It winds the same way as segment so overlaps never cancel out.
func dot(r *vector.Rasterizer, x, y, half float32) {
	r.MoveTo(x-half, y+half)
	r.LineTo(x+half, y+half)
	r.LineTo(x+half, y-half)
	r.LineTo(x-half, y-half)
	r.ClosePath()
}
