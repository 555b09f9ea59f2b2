package layout

import (
	"testing"
)

func TestPlanHeightIsSumOfBands(t *testing.T) {
	for events := 0; events <= 40; events++ {
		for lines := 0; lines <= 60; lines += 3 {
			d := Plan(events, lines)
			want := d.Details.HeaderHeight + d.Details.ContentHeight + d.Details.FooterHeight
			if d.Height != want {
				t.Fatalf("events=%d lines=%d: height %g != %g", events, lines, d.Height, want)
			}
			if d.Height <= 0 {
				t.Fatalf("events=%d lines=%d: height must be positive, got %g", events, lines, d.Height)
			}
			if d.Width != CanvasWidth {
				t.Fatalf("width must be fixed, got %g", d.Width)
			}
			if got := d.Details.ContentHeight / d.RowPitch(); got != float64(events) {
				t.Fatalf("content height %g is not %d row pitches", d.Details.ContentHeight, events)
			}
			if (d.Details.InformationHeight == 0) != (lines == 0) {
				t.Fatalf("events=%d lines=%d: information height %g", events, lines, d.Details.InformationHeight)
			}
		}
	}
}

func TestPlanFooterContainsEveryLine(t *testing.T) {
	for lines := 1; lines <= 50; lines++ {
		d := Plan(3, lines)
		lastLineBottom := d.FooterTop() + d.Details.RowGap + LinePitch*float64(lines)
		if lastLineBottom > d.Height {
			t.Fatalf("lines=%d: last line bottom %g exceeds canvas height %g", lines, lastLineBottom, d.Height)
		}
		if bg := d.FooterTop() + d.Details.InformationHeight; bg > d.Height {
			t.Fatalf("lines=%d: footer background bottom %g exceeds canvas height %g", lines, bg, d.Height)
		}
	}
}

func TestPlanKnownValues(t *testing.T) {
	cases := []struct {
		events, lines int
		info, footer  float64
		height        float64
	}{
		{0, 0, 0, 184, 384},
		{1, 0, 0, 184, 528},
		{2, 3, 116, 132, 620},
		{5, 10, 312, 328, 1248},
	}
	for _, c := range cases {
		d := Plan(c.events, c.lines)
		if d.Details.InformationHeight != c.info || d.Details.FooterHeight != c.footer || d.Height != c.height {
			t.Fatalf("Plan(%d, %d) = info %g footer %g height %g; want %g %g %g",
				c.events, c.lines, d.Details.InformationHeight, d.Details.FooterHeight, d.Height, c.info, c.footer, c.height)
		}
	}
}

func TestRowGeometry(t *testing.T) {
	d := Plan(4, 0)
	if got := d.RowTop(0); got != HeaderHeight {
		t.Fatalf("first row top: got %g want %g", got, HeaderHeight)
	}
	if got := d.RowTop(3); got != HeaderHeight+3*144 {
		t.Fatalf("fourth row top: got %g", got)
	}
	if got := d.RowAnchor(2); got != HeaderHeight+2*144+75 {
		t.Fatalf("third row anchor: got %g", got)
	}
	if got := d.FooterTop(); got != HeaderHeight+4*144 {
		t.Fatalf("footer top: got %g", got)
	}
	w, h := d.PixelSize()
	if w != 1080 || h != int(d.Height) {
		t.Fatalf("pixel size: %dx%d", w, h)
	}
}
