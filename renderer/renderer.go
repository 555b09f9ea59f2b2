package renderer

import (
	"image"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// Renderer 将布局结果绘制为位图，尺寸取自 result.Dimensions。
type Renderer interface {
	Render(result *layout.Result) (*image.RGBA, error)
}
