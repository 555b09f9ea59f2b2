package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/canvas"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/assets"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/renderer"
)

// tracer traces with key 'flyer.render'
func tracer() tracing.Trace {
	return tracing.Select("flyer.render")
}

// Renderer paints flyers via github.com/tdewolff/canvas and measures text with the
// same font faces it paints with.
type Renderer struct {
	background image.Image
	logo       image.Image
	gradient   Gradient

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Fonts      map[string][]byte // font file bytes by family name
	Background image.Image
	Logo       image.Image
}

// NewRenderer registers every font up front so that painting never has to load one.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{
		background:   opts.Background,
		logo:         opts.Logo,
		gradient:     Rainbow(),
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	names := make([]string, 0, len(opts.Fonts))
	for name := range opts.Fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.RegisterFont(name, opts.Fonts[name]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// FromBundle creates a renderer from loaded assets.
func FromBundle(b *assets.Bundle) (*Renderer, error) {
	if b == nil {
		return nil, fmt.Errorf("asset bundle is nil")
	}
	return NewRenderer(Options{Fonts: b.Fonts, Background: b.Background, Logo: b.Logo})
}

// RegisterFont makes a font addressable by family name. A later registration of
// the same family replaces the earlier one.
func (r *Renderer) RegisterFont(family string, data []byte) error {
	if family == "" {
		return fmt.Errorf("font family name is empty")
	}
	if len(data) == 0 {
		return fmt.Errorf("font %s has no data", family)
	}
	f := canvas.NewFontFamily(family)
	if err := f.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("load font %s: %w", family, err)
	}
	r.fontMu.Lock()
	r.fontFamilies[family] = f
	r.fontMu.Unlock()
	tracer().Debugf("registered font family %s (%d bytes)", family, len(data))
	return nil
}

// MeasureText implements layout.Measurer.
func (r *Renderer) MeasureText(font layout.Font, text string) (float64, error) {
	face, err := r.face(font, black)
	if err != nil {
		return 0, err
	}
	return face.TextWidth(text), nil
}

// Render paints result onto a new surface sized by its dimensions.
func (r *Renderer) Render(result *layout.Result) (*image.RGBA, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	s := NewSurface(result.Dimensions.PixelSize())
	if err := r.Paint(s, result); err != nil {
		return nil, err
	}
	return s.Image(), nil
}

// Paint runs the background, events and information passes in that order on a
// surface already sized to result.Dimensions.
func (r *Renderer) Paint(s *Surface, result *layout.Result) error {
	if r.background == nil || r.logo == nil {
		return fmt.Errorf("background and logo images must be loaded before painting")
	}
	st := DefaultStyle()
	if err := r.drawBackground(s, &st, result.Dimensions); err != nil {
		return fmt.Errorf("background pass: %w", err)
	}
	if err := r.drawEvents(s, &st, result.Data, result.Dimensions); err != nil {
		return fmt.Errorf("events pass: %w", err)
	}
	if err := r.drawInformation(s, &st, result.Lines, result.Dimensions); err != nil {
		return fmt.Errorf("information pass: %w", err)
	}
	tracer().Infof("painted %dx%d flyer", s.Width(), s.Height())
	return nil
}

func (r *Renderer) face(font layout.Font, col color.Color) (*canvas.FontFace, error) {
	r.fontMu.Lock()
	family, ok := r.fontFamilies[font.Family]
	r.fontMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("font family %q is not registered", font.Family)
	}
	return family.Face(layout.PxToPt(font.Size), col, canvas.FontRegular, canvas.FontNormal), nil
}
