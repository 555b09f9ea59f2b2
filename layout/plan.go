package layout

// 设计时常量（像素）。
const (
	CanvasWidth  = 1080.0
	DayWidth     = 256.0
	RowHeight    = 128.0
	RowGap       = 16.0
	HeaderHeight = 200.0
	// LinePitch 是页脚每行文字占用的高度。
	LinePitch = 28.0
	// ContentWidth 是页脚文字的宽度预算。
	ContentWidth = CanvasWidth - RowGap*4
	// RowTextAnchor 是行内文字基线相对行顶部的偏移。
	RowTextAnchor = 75.0
	CornerRadius  = 8.0
)

// 字体族名，渲染器按这两个名字注册字体。
const (
	FamilyBold   = "MontserratBold"
	FamilyMedium = "MontserratMedium"
)

var (
	// TitleFont 用于月份、日期与活动名称。
	TitleFont = Font{Family: FamilyBold, Size: 32}
	// DetailsNumFont 用于名称后的编号。
	DetailsNumFont = Font{Family: FamilyMedium, Size: 16}
	// LocationFont 用于地点。
	LocationFont = Font{Family: FamilyMedium, Size: 24}
	// InformationFont 用于页脚文字，换行测量必须使用同一字体。
	InformationFont = Font{Family: FamilyMedium, Size: 24}
)

// Plan 只根据活动数量与页脚行数推导画布尺寸。
//
// 页脚没有文字时仍保留 HeaderHeight-RowGap 的高度，而不是 0。
func Plan(eventCount, lineCount int) Dimensions {
	if eventCount < 0 {
		eventCount = 0
	}
	if lineCount < 0 {
		lineCount = 0
	}

	informationHeight := 0.0
	footerHeight := HeaderHeight - RowGap
	if lineCount > 0 {
		informationHeight = RowGap*2 + LinePitch*float64(lineCount)
		footerHeight = RowGap + informationHeight
	}

	details := LayoutMetrics{
		DayWidth:          DayWidth,
		RowGap:            RowGap,
		RowHeight:         RowHeight,
		HeaderHeight:      HeaderHeight,
		ContentHeight:     float64(eventCount) * (RowHeight + RowGap),
		InformationHeight: informationHeight,
		FooterHeight:      footerHeight,
	}
	tracer().Debugf("plan: events=%d lines=%d content=%g footer=%g", eventCount, lineCount, details.ContentHeight, details.FooterHeight)

	return Dimensions{
		Width:   CanvasWidth,
		Height:  details.HeaderHeight + details.ContentHeight + details.FooterHeight,
		Details: details,
	}
}
