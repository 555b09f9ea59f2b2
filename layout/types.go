package layout

// 该文件定义传单的输入数据与布局结果，供换行、尺寸规划、渲染与调试 JSON 共用。

// EventRecord 描述一行活动。Location 为空表示没有地点，DetailsNum 为 0 表示没有编号。
type EventRecord struct {
	Day        string `json:"day" yaml:"day"`
	Name       string `json:"name" yaml:"name"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	DetailsNum int    `json:"detailsNum" yaml:"detailsNum"`
	Details    string `json:"details,omitempty" yaml:"details,omitempty"`
}

// HasLocation 表示是否需要在名称下方绘制地点。
func (e EventRecord) HasLocation() bool { return len(e.Location) > 0 }

// FlyerData 是一次渲染的完整输入，Events 的顺序即绘制顺序。
type FlyerData struct {
	Month         string        `json:"month" yaml:"month"`
	TopDetails    string        `json:"topDetails" yaml:"topDetails"`
	BottomDetails string        `json:"bottomDetails" yaml:"bottomDetails"`
	Events        []EventRecord `json:"events" yaml:"events"`
}

// WrappedLine 表示页脚中的一行文本。Blank 为 true 时只占位，不绘制文字。
type WrappedLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Blank   bool    `json:"blank,omitempty"`
}

// LayoutMetrics 保存各区域的尺寸（单位：像素）。
type LayoutMetrics struct {
	DayWidth          float64 `json:"dayWidth"`
	RowGap            float64 `json:"rowGap"`
	RowHeight         float64 `json:"rowHeight"`
	HeaderHeight      float64 `json:"headerHeight"`
	ContentHeight     float64 `json:"contentHeight"`
	InformationHeight float64 `json:"informationHeight"`
	FooterHeight      float64 `json:"footerHeight"`
}

// Dimensions 是画布最终尺寸以及派生的布局信息。
type Dimensions struct {
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Details LayoutMetrics `json:"details"`
}

// RowPitch 是相邻两行活动顶部之间的距离。
func (d Dimensions) RowPitch() float64 { return d.Details.RowHeight + d.Details.RowGap }

// RowTop 返回第 index 行活动背景的顶部坐标。
func (d Dimensions) RowTop(index int) float64 {
	return d.Details.HeaderHeight + d.RowPitch()*float64(index)
}

// RowAnchor 返回第 index 行文字的垂直锚点（基线）。
func (d Dimensions) RowAnchor(index int) float64 {
	return d.RowTop(index) + RowTextAnchor
}

// FooterTop 返回页脚区域的顶部坐标。
func (d Dimensions) FooterTop() float64 {
	return d.Details.HeaderHeight + d.Details.ContentHeight
}

// PixelSize 返回画布的整数像素尺寸。
func (d Dimensions) PixelSize() (int, int) {
	return int(d.Width + 0.5), int(d.Height + 0.5)
}

// Result 保存一次布局的全部产物：输入数据、换行结果与尺寸。
type Result struct {
	Data       FlyerData     `json:"data"`
	Lines      []WrappedLine `json:"lines"`
	Dimensions Dimensions    `json:"dimensions"`
}

// Font 以族名与像素字号描述字体，族名需事先在渲染器中注册。
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}
