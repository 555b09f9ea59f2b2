// Package engine 按固定顺序编排一次传单渲染：换行、尺寸规划、调整画布、三个绘制阶段。
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
	canvasrenderer "github.com/NicholeMattera/Outclimb-Event-Image-Generator/renderer/canvas"
)

// tracer traces with key 'flyer.engine'
func tracer() tracing.Trace {
	return tracing.Select("flyer.engine")
}

var (
	// ErrBusy 表示同一画布上已有渲染正在进行。
	ErrBusy = errors.New("engine: 画布正在被另一次渲染使用")
	// ErrNotRendered 表示还没有成功完成过渲染，无法导出。
	ErrNotRendered = errors.New("engine: 尚未渲染")
)

// Painter 是引擎需要的绘制后端：测量文本，并在已调整好尺寸的画布上完成全部绘制阶段。
type Painter interface {
	layout.Measurer
	Paint(s *canvasrenderer.Surface, result *layout.Result) error
}

// Engine 独占一块画布。同一 Engine 上的 Render 不可重入，并发调用会得到 ErrBusy。
type Engine struct {
	mu      sync.Mutex
	painter Painter
	opts    layout.BuildOptions
	surface *canvasrenderer.Surface
	last    *layout.Result
	valid   bool
}

// New 创建引擎。opts.Measurer 为空时使用 painter 自身测量。
func New(painter Painter, opts layout.BuildOptions) *Engine {
	if opts.Measurer == nil {
		opts.Measurer = painter
	}
	return &Engine{
		painter: painter,
		opts:    opts,
		surface: canvasrenderer.NewSurface(0, 0),
	}
}

// Render 换行、规划尺寸、按规划调整画布，然后依次执行背景、活动、页脚三个阶段。
// 失败时画布内容作废，Export 会返回 ErrNotRendered。
func (e *Engine) Render(data layout.FlyerData) (*layout.Result, error) {
	if !e.mu.TryLock() {
		return nil, ErrBusy
	}
	defer e.mu.Unlock()

	e.valid = false
	e.last = nil
	result, err := layout.Build(data, e.opts)
	if err != nil {
		return nil, fmt.Errorf("布局失败: %w", err)
	}
	e.surface.Resize(result.Dimensions.PixelSize())
	if err := e.painter.Paint(e.surface, result); err != nil {
		return nil, fmt.Errorf("绘制失败: %w", err)
	}
	e.last = result
	e.valid = true
	tracer().Debugf("rendered %q: %d events, %d lines", data.Month, len(data.Events), len(result.Lines))
	return result, nil
}

// Result 返回最近一次成功渲染的布局结果。
func (e *Engine) Result() (*layout.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.valid {
		return nil, ErrNotRendered
	}
	return e.last, nil
}

// Image 返回画布当前内容的副本。
func (e *Engine) Image() (*image.RGBA, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.valid {
		return nil, ErrNotRendered
	}
	src := e.surface.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst, nil
}

// Export 把画布编码为 PNG。
func (e *Engine) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.valid {
		return nil, ErrNotRendered
	}
	var buf bytes.Buffer
	if err := canvasrenderer.EncodePNG(&buf, e.surface.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL 把画布编码为 data:image/png;base64 URL。
func (e *Engine) DataURL() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.valid {
		return "", ErrNotRendered
	}
	return canvasrenderer.DataURL(e.surface.Image())
}
