package layout

import "errors"

// ErrNoMeasurer 表示 Build 缺少测量后端。
var ErrNoMeasurer = errors.New("layout: 缺少文本测量后端 Measurer")

// BuildOptions 配置布局阶段所需的依赖。
type BuildOptions struct {
	Measurer Measurer
	// Font 用于页脚换行测量，必须与绘制页脚时的字体一致；零值时使用 InformationFont。
	Font Font
	// MaxWidth 为页脚每行的宽度预算；<=0 时使用 ContentWidth。
	MaxWidth float64
}

// Measurer 返回文本在给定字体下的渲染宽度（像素），不持有状态。
type Measurer interface {
	MeasureText(font Font, text string) (float64, error)
}

func (o BuildOptions) font() Font {
	if o.Font.Family == "" || o.Font.Size <= 0 {
		return InformationFont
	}
	return o.Font
}

func (o BuildOptions) maxWidth() float64 {
	if o.MaxWidth <= 0 {
		return ContentWidth
	}
	return o.MaxWidth
}
