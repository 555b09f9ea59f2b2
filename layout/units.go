package layout

import "strconv"

// The canvas backend works in millimetres and sizes font faces in points. The flyer
// is rasterized at one dot per millimetre, so one layout unit is one pixel.

// Conversion constants between pt and mm (= px).
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// PxToPt converts a pixel font size into the point size expected by font faces.
func PxToPt(px float64) float64 { return px * MmToPt }

// PtToPx converts a point size back to pixels.
func PtToPx(pt float64) float64 { return pt * PtToMm }

// String renders the font the way a CSS font shorthand would, e.g. "32px MontserratBold".
func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}
