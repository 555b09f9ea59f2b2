package canvasrenderer

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Surface is the raster a flyer is painted on. One layout unit is one pixel.
// A Surface must not be shared between concurrent renders.
type Surface struct {
	img *image.RGBA
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Resize discards the current content and allocates a fresh transparent raster.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image exposes the painted raster.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// FillRect fills the rectangle with st.Fill using st.Composite.
func (s *Surface) FillRect(st *Style, x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(st.Fill)
	s.composite(r, src, r.Min, st)
}

// FillGradient covers the whole surface with a linear gradient whose line runs
// from (x0,y0) to (x1,y1), combined with the surface using st.Composite.
func (s *Surface) FillGradient(st *Style, g Gradient, x0, y0, x1, y1 float64) {
	r := pixelRect(0, 0, float64(s.Width()), float64(s.Height()))
	layer := image.NewRGBA(r)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			t := linearT(float64(px)+0.5, float64(py)+0.5, x0, y0, x1, y1)
			layer.SetRGBA(px, py, g.At(t))
		}
	}
	s.composite(r, layer, r.Min, st)
}

// DrawImage draws img at its natural pixel size with its top-left corner at (x, y).
// Whole-pixel offsets are copied exactly; fractional ones are resampled bilinearly.
func (s *Surface) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	if x == math.Trunc(x) && y == math.Trunc(y) {
		dp := image.Pt(int(x), int(y))
		draw.Draw(s.img, image.Rectangle{Min: dp, Max: dp.Add(b.Size())}, img, b.Min, draw.Over)
		return
	}
	m := f64.Aff3{
		1, 0, x - float64(b.Min.X),
		0, 1, y - float64(b.Min.Y),
	}
	draw.BiLinear.Transform(s.img, m, img, b, draw.Over, nil)
}

// Layer records vector drawing on a transparent canvas the size of the surface,
// rasterizes it and composites the result with st.Composite. The canvas uses a
// top-left origin like the surface.
func (s *Surface) Layer(st *Style, paint func(ctx *canvas.Context) error) error {
	c := canvas.New(float64(s.Width()), float64(s.Height()))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	if err := paint(ctx); err != nil {
		return err
	}
	layer := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	s.composite(s.img.Bounds(), layer, layer.Bounds().Min, st)
	return nil
}

func (s *Surface) composite(r image.Rectangle, src image.Image, sp image.Point, st *Style) {
	switch st.Composite {
	case Screen:
		screen(s.img, r, src, sp)
	default:
		draw.Draw(s.img, r, src, sp, draw.Over)
	}
}

// screen applies the separable screen blend with source-over compositing. In
// premultiplied form both colour and alpha reduce to s + d - s*d.
func screen(dst *image.RGBA, r image.Rectangle, src image.Image, sp image.Point) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sr, sg, sb, sa := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y).RGBA()
			if sa == 0 {
				continue
			}
			d := dst.RGBAAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{
				R: screen8(d.R, sr),
				G: screen8(d.G, sg),
				B: screen8(d.B, sb),
				A: screen8(d.A, sa),
			})
		}
	}
}

func screen8(d uint8, s16 uint32) uint8 {
	dv := float64(d) / 0xff
	sv := float64(s16) / 0xffff
	return uint8(math.Round((dv + sv - dv*sv) * 0xff))
}

func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
