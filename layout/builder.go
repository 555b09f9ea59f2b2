package layout

import "fmt"

// Build 依次执行换行与尺寸规划，返回可以直接交给渲染器的结果。
func Build(data FlyerData, opts BuildOptions) (*Result, error) {
	if opts.Measurer == nil {
		return nil, ErrNoMeasurer
	}

	lines, err := Wrap(opts.Measurer, opts.font(), opts.maxWidth(), data.TopDetails, data.Events, data.BottomDetails)
	if err != nil {
		return nil, fmt.Errorf("页脚换行失败: %w", err)
	}
	dimens := Plan(len(data.Events), len(lines))
	tracer().Infof("layout: %d events, %d footer lines, canvas %gx%g", len(data.Events), len(lines), dimens.Width, dimens.Height)

	return &Result{
		Data:       data,
		Lines:      lines,
		Dimensions: dimens,
	}, nil
}
