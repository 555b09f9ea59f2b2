package canvasrenderer

import (
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// drawBackground clears the surface, draws the background image at its natural
// size, screens the rainbow over everything and centres the logo in the header.
func (r *Renderer) drawBackground(s *Surface, st *Style, dimens layout.Dimensions) error {
	defer st.Reset()

	s.FillRect(st, 0, 0, dimens.Width, dimens.Height)
	s.DrawImage(r.background, 0, 0)

	st.Composite = Screen
	s.FillGradient(st, r.gradient, 0, 0, dimens.Width, dimens.Height)
	st.Composite = SourceOver

	lb := r.logo.Bounds()
	s.DrawImage(r.logo,
		(dimens.Width-float64(lb.Dx()))/2,
		(dimens.Details.HeaderHeight-float64(lb.Dy()))/2,
	)
	return nil
}
