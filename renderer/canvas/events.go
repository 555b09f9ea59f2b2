package canvasrenderer

import (
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// drawEvents paints the month label above the first row and one row per event.
func (r *Renderer) drawEvents(s *Surface, st *Style, data layout.FlyerData, dimens layout.Dimensions) error {
	defer st.Reset()

	return s.Layer(st, func(ctx *canvas.Context) error {
		d := dimens.Details
		st.Fill = black

		month := strings.ToUpper(data.Month)
		monthWidth, err := r.MeasureText(layout.TitleFont, month)
		if err != nil {
			return err
		}
		if err := r.fillText(ctx, st, layout.TitleFont, month, (d.DayWidth-monthWidth)/2, d.HeaderHeight-d.RowGap, d.DayWidth); err != nil {
			return err
		}

		for i, ev := range data.Events {
			if err := r.drawEvent(ctx, st, ev, i, dimens); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Renderer) drawEvent(ctx *canvas.Context, st *Style, ev layout.EventRecord, index int, dimens layout.Dimensions) error {
	d := dimens.Details
	top := dimens.RowTop(index)
	anchor := dimens.RowAnchor(index)
	hasLocation := ev.HasLocation()

	// 日期与名称背景
	st.Fill = rowBackground
	fillRoundRect(ctx, st, -8, top, d.DayWidth+8, d.RowHeight, layout.CornerRadius)
	nameX := d.DayWidth + d.RowGap
	fillRoundRect(ctx, st, nameX, top, dimens.Width+8-nameX, d.RowHeight, layout.CornerRadius)
	st.Fill = black

	day := strings.ToUpper(ev.Day)
	dayWidth, err := r.MeasureText(layout.TitleFont, day)
	if err != nil {
		return err
	}
	if err := r.fillText(ctx, st, layout.TitleFont, day, (d.DayWidth-dayWidth)/2, anchor, d.DayWidth); err != nil {
		return err
	}

	name := strings.ToUpper(ev.Name)
	nameY := anchor
	if hasLocation {
		nameY -= 16
	}
	textMax := dimens.Width - (d.DayWidth + 48)
	if err := r.fillText(ctx, st, layout.TitleFont, name, d.DayWidth+32, nameY, textMax); err != nil {
		return err
	}

	if ev.DetailsNum != 0 {
		nameWidth, err := r.MeasureText(layout.TitleFont, name)
		if err != nil {
			return err
		}
		num := strconv.Itoa(ev.DetailsNum)
		numWidth, err := r.MeasureText(layout.DetailsNumFont, num)
		if err != nil {
			return err
		}
		numY := anchor - 12
		if hasLocation {
			numY = anchor - 28
		}
		x := detailsNumberX(dimens, nameWidth, numWidth)
		if err := r.fillText(ctx, st, layout.DetailsNumFont, num, x, numY, 0); err != nil {
			return err
		}
	}

	if hasLocation {
		if err := r.fillText(ctx, st, layout.LocationFont, ev.Location, d.DayWidth+32, anchor+16, textMax); err != nil {
			return err
		}
	}
	return nil
}

// detailsNumberX places the number just after the name; past the right margin it is
// right-aligned near the canvas edge instead.
func detailsNumberX(dimens layout.Dimensions, nameWidth, numWidth float64) float64 {
	x := dimens.Details.DayWidth + 40 + nameWidth
	if x > dimens.Width-32 {
		x = dimens.Width - numWidth - 8
	}
	return x
}
