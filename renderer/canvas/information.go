package canvasrenderer

import (
	"github.com/tdewolff/canvas"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// drawInformation paints the footer card and its wrapped lines. Nothing is painted
// when there are no lines.
func (r *Renderer) drawInformation(s *Surface, st *Style, lines []layout.WrappedLine, dimens layout.Dimensions) error {
	defer st.Reset()
	if len(lines) == 0 {
		return nil
	}

	return s.Layer(st, func(ctx *canvas.Context) error {
		d := dimens.Details
		footerTop := dimens.FooterTop()

		st.Fill = rowBackground
		fillRoundRect(ctx, st, d.RowGap, footerTop, dimens.Width-d.RowGap*2, d.InformationHeight, layout.CornerRadius)

		st.Fill = black
		st.Baseline = BaselineTop
		maxWidth := dimens.Width - d.RowGap*4
		for i, line := range lines {
			if line.Blank {
				continue
			}
			y := footerTop + d.RowGap + layout.LinePitch*float64(i)
			if err := r.fillText(ctx, st, layout.InformationFont, line.Content, 32, y, maxWidth); err != nil {
				return err
			}
		}
		return nil
	})
}
