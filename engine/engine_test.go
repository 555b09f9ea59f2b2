package engine

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
	canvasrenderer "github.com/NicholeMattera/Outclimb-Event-Image-Generator/renderer/canvas"
)

// fakePainter 记录调用顺序，可选择在 Paint 中阻塞或失败。
type fakePainter struct {
	calls   []string
	started chan struct{}
	release chan struct{}
	err     error
}

func (p *fakePainter) MeasureText(font layout.Font, text string) (float64, error) {
	return float64(utf8.RuneCountInString(text)) * 10, nil
}

func (p *fakePainter) Paint(s *canvasrenderer.Surface, result *layout.Result) error {
	w, h := result.Dimensions.PixelSize()
	if s.Width() != w || s.Height() != h {
		return errors.New("surface not resized before painting")
	}
	p.calls = append(p.calls, "paint")
	if p.started != nil {
		close(p.started)
		<-p.release
	}
	return p.err
}

func sampleData() layout.FlyerData {
	return layout.FlyerData{
		Month:         "October",
		TopDetails:    "All events are free for members.",
		BottomDetails: "outclimb.example",
		Events: []layout.EventRecord{
			{Day: "Sat 5", Name: "Bouldering Social", Location: "Main Gym", DetailsNum: 1, Details: "Shoe rental included."},
			{Day: "Sun 13", Name: "Top Rope Clinic"},
			{Day: "Fri 25", Name: "Halloween Climb", DetailsNum: 7, Details: "Costumes encouraged."},
		},
	}
}

func TestRenderResizesSurfaceFromPlan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flyer.engine")
	defer teardown()

	p := &fakePainter{}
	e := New(p, layout.BuildOptions{})
	res, err := e.Render(sampleData())
	require.NoError(t, err)
	require.Equal(t, []string{"paint"}, p.calls)
	require.Equal(t, layout.Plan(3, len(res.Lines)), res.Dimensions)

	img, err := e.Image()
	require.NoError(t, err)
	w, h := res.Dimensions.PixelSize()
	require.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	got, err := e.Result()
	require.NoError(t, err)
	require.Same(t, res, got)
}

func TestExportBeforeRender(t *testing.T) {
	e := New(&fakePainter{}, layout.BuildOptions{})
	_, err := e.Export()
	require.ErrorIs(t, err, ErrNotRendered)
	_, err = e.DataURL()
	require.ErrorIs(t, err, ErrNotRendered)
	_, err = e.Image()
	require.ErrorIs(t, err, ErrNotRendered)
}

func TestFailedPaintInvalidatesSurface(t *testing.T) {
	p := &fakePainter{}
	e := New(p, layout.BuildOptions{})
	_, err := e.Render(sampleData())
	require.NoError(t, err)

	p.err = errors.New("boom")
	_, err = e.Render(sampleData())
	require.Error(t, err)
	_, err = e.Export()
	require.ErrorIs(t, err, ErrNotRendered)
}

func TestConcurrentRenderIsRejected(t *testing.T) {
	p := &fakePainter{started: make(chan struct{}), release: make(chan struct{})}
	e := New(p, layout.BuildOptions{})

	done := make(chan error, 1)
	go func() {
		_, err := e.Render(sampleData())
		done <- err
	}()
	<-p.started

	_, err := e.Render(sampleData())
	require.ErrorIs(t, err, ErrBusy)

	close(p.release)
	require.NoError(t, <-done)
}

func newCanvasRenderer(t *testing.T) *canvasrenderer.Renderer {
	t.Helper()
	bg := image.NewRGBA(image.Rect(0, 0, 64, 64))
	logo := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range logo.Pix {
		logo.Pix[i] = 0xff
	}
	bg.SetRGBA(3, 3, color.RGBA{R: 0xff, A: 0xff})
	r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{
		Fonts: map[string][]byte{
			layout.FamilyBold:   gobold.TTF,
			layout.FamilyMedium: gomedium.TTF,
		},
		Background: bg,
		Logo:       logo,
	})
	require.NoError(t, err)
	return r
}

func TestRenderIsDeterministicAcrossEngines(t *testing.T) {
	r := newCanvasRenderer(t)
	a, b := New(r, layout.BuildOptions{}), New(r, layout.BuildOptions{})

	ra, err := a.Render(sampleData())
	require.NoError(t, err)
	rb, err := b.Render(sampleData())
	require.NoError(t, err)

	if diff := cmp.Diff(ra.Lines, rb.Lines); diff != "" {
		t.Fatalf("wrapped lines differ (-a +b):\n%s", diff)
	}
	require.Equal(t, ra.Dimensions, rb.Dimensions)

	pa, err := a.Export()
	require.NoError(t, err)
	pb, err := b.Export()
	require.NoError(t, err)
	require.True(t, bytes.Equal(pa, pb), "PNG output differs between engines")

	decoded, err := png.Decode(bytes.NewReader(pa))
	require.NoError(t, err)
	w, h := ra.Dimensions.PixelSize()
	require.Equal(t, image.Rect(0, 0, w, h), decoded.Bounds())

	url, err := a.DataURL()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestEmptyFooterProducesNoLines(t *testing.T) {
	r := newCanvasRenderer(t)
	e := New(r, layout.BuildOptions{})
	res, err := e.Render(layout.FlyerData{
		Month:  "May",
		Events: []layout.EventRecord{{Day: "Thu 1", Name: "Open Climb"}},
	})
	require.NoError(t, err)
	require.Empty(t, res.Lines)
	require.Zero(t, res.Dimensions.Details.InformationHeight)
	require.Equal(t, layout.HeaderHeight-layout.RowGap, res.Dimensions.Details.FooterHeight)
}
