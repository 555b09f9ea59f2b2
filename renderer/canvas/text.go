package canvasrenderer

import (
	"github.com/tdewolff/canvas"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// fillText draws text left-aligned at x with st.Fill, treating y according to
// st.Baseline. Text wider than maxWidth (when > 0) is squeezed horizontally.
func (r *Renderer) fillText(ctx *canvas.Context, st *Style, font layout.Font, text string, x, y, maxWidth float64) error {
	if text == "" {
		return nil
	}
	face, err := r.face(font, st.Fill)
	if err != nil {
		return err
	}
	baseline := y
	if st.Baseline == BaselineTop {
		baseline = y + face.Metrics().Ascent
	}
	line := canvas.NewTextLine(face, text, canvas.Left)

	width := face.TextWidth(text)
	if maxWidth <= 0 || width <= maxWidth {
		ctx.DrawText(x, baseline, line)
		return nil
	}
	ctx.Push()
	ctx.ComposeView(canvas.Identity.Translate(x, 0).Scale(maxWidth/width, 1).Translate(-x, 0))
	ctx.DrawText(x, baseline, line)
	ctx.Pop()
	return nil
}

// fillRoundRect fills a rounded rectangle whose top-left corner is (x, y).
func fillRoundRect(ctx *canvas.Context, st *Style, x, y, w, h, radius float64) {
	ctx.SetFillColor(st.Fill)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(x, y, canvas.RoundedRectangle(w, h, radius))
}
