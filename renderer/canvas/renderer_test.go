package canvasrenderer

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{
		Fonts: map[string][]byte{
			layout.FamilyBold:   gobold.TTF,
			layout.FamilyMedium: gomedium.TTF,
		},
		Background: solid(100, 100, red),
		Logo:       solid(10, 10, blue),
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func sampleResult(t *testing.T, r *Renderer, data layout.FlyerData) *layout.Result {
	t.Helper()
	res, err := layout.Build(data, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return res
}

func TestMeasureText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flyer.render")
	defer teardown()

	r := newTestRenderer(t)
	small, err := r.MeasureText(layout.Font{Family: layout.FamilyMedium, Size: 16}, "Climb")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	large, err := r.MeasureText(layout.Font{Family: layout.FamilyMedium, Size: 32}, "Climb")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if small <= 0 || large <= small {
		t.Fatalf("expected width to grow with size: 16px=%g 32px=%g", small, large)
	}
	if diff := large - 2*small; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("width should scale linearly with size: 16px=%g 32px=%g", small, large)
	}
	empty, err := r.MeasureText(layout.InformationFont, "")
	if err != nil || empty != 0 {
		t.Fatalf("empty text should measure 0, got %g (%v)", empty, err)
	}
	if _, err := r.MeasureText(layout.Font{Family: "Missing", Size: 12}, "x"); err == nil {
		t.Fatalf("expected error for unregistered family")
	}
}

// TestWrapWithRealFont 验证使用真实字体度量时每行不超过宽度预算。
func TestWrapWithRealFont(t *testing.T) {
	r := newTestRenderer(t)
	text := strings.Repeat("Join us for a night of bouldering, games and pizza at the gym. ", 8)
	lines, err := layout.Wrap(r, layout.InformationFont, layout.ContentWidth, text, nil, "")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	for i, ln := range lines {
		w, _ := r.MeasureText(layout.InformationFont, ln.Content)
		if w > layout.ContentWidth {
			t.Fatalf("line %d too wide: %g > %g (%q)", i, w, layout.ContentWidth, ln.Content)
		}
	}
}

func TestNewRendererRejectsBadFonts(t *testing.T) {
	if _, err := NewRenderer(Options{Fonts: map[string][]byte{"Broken": []byte("not a font")}}); err == nil {
		t.Fatalf("expected error for invalid font data")
	}
	if _, err := NewRenderer(Options{Fonts: map[string][]byte{"": gobold.TTF}}); err == nil {
		t.Fatalf("expected error for empty family name")
	}
}

func TestPaintRequiresImages(t *testing.T) {
	r, err := NewRenderer(Options{Fonts: map[string][]byte{layout.FamilyMedium: gomedium.TTF}})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	res := &layout.Result{Dimensions: layout.Plan(0, 0)}
	if err := r.Paint(NewSurface(res.Dimensions.PixelSize()), res); err == nil {
		t.Fatalf("expected error without background and logo")
	}
}

func TestRenderSizesSurfaceFromDimensions(t *testing.T) {
	r := newTestRenderer(t)
	res := sampleResult(t, r, layout.FlyerData{
		Month:         "October",
		TopDetails:    "Members climb free.",
		BottomDetails: "outclimb.example",
		Events: []layout.EventRecord{
			{Day: "Sat 5", Name: "Bouldering Social", Location: "Main Gym", DetailsNum: 1, Details: "Shoes included."},
			{Day: "Sun 13", Name: "Top Rope Clinic"},
		},
	})
	img, err := r.Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	w, h := res.Dimensions.PixelSize()
	if img.Bounds() != image.Rect(0, 0, w, h) {
		t.Fatalf("unexpected bounds %v, want %dx%d", img.Bounds(), w, h)
	}
	// 清屏后整张画布不透明。
	for _, p := range []image.Point{{0, 0}, {w - 1, h - 1}, {w / 2, h / 2}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 0xff {
			t.Fatalf("pixel %v not opaque: alpha %d", p, a)
		}
	}
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}
