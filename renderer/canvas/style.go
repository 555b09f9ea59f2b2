package canvasrenderer

import (
	"image/color"
)

// CompositeOp selects how a layer is combined with the surface below it.
type CompositeOp int

const (
	SourceOver CompositeOp = iota
	Screen
)

func (op CompositeOp) String() string {
	switch op {
	case Screen:
		return "screen"
	default:
		return "source-over"
	}
}

// Baseline selects which point of the em box the y coordinate of a text call refers to.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
)

// Filter is the layer post-processing state. FilterNone is the only value.
type Filter int

const FilterNone Filter = 0

var (
	black         = color.RGBA{A: 0xff}
	rowBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 204} // rgba(255,255,255,0.8)
)

// Style is the paint state a pass works with. Every pass receives the canonical
// default and must hand it back unchanged.
type Style struct {
	Fill      color.Color
	Composite CompositeOp
	Baseline  Baseline
	Filter    Filter
}

// DefaultStyle is black fill, source-over, alphabetic baseline, no filter.
func DefaultStyle() Style {
	return Style{Fill: black, Composite: SourceOver, Baseline: BaselineAlphabetic, Filter: FilterNone}
}

// Reset restores the default paint state.
func (s *Style) Reset() { *s = DefaultStyle() }

// IsDefault reports whether s equals DefaultStyle.
func (s Style) IsDefault() bool {
	d := DefaultStyle()
	return s.Composite == d.Composite && s.Baseline == d.Baseline && s.Filter == d.Filter && sameColor(s.Fill, d.Fill)
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
