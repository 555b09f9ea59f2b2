package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/assets"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/config"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/engine"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/ics"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
	canvasrenderer "github.com/NicholeMattera/Outclimb-Event-Image-Generator/renderer/canvas"
)

// app 持有一次加载好的资源与引擎，watch 模式下反复使用。
type app struct {
	cfg     *config.Config
	engine  *engine.Engine
	fetcher *ics.Fetcher
}

// newApp 在渲染前解析全部资源：字体与图片未就绪时直接失败。
func newApp(cfg *config.Config, baseDir string) (*app, error) {
	bundle, err := assets.Load(assets.Options{
		BaseDir:    baseDir,
		BoldFont:   assets.Resource{Path: cfg.Fonts.Bold},
		MediumFont: assets.Resource{Path: cfg.Fonts.Medium},
		Background: assets.Resource{Path: cfg.Images.Background},
		Logo:       assets.Resource{Path: cfg.Images.Logo},
	})
	if err != nil {
		return nil, fmt.Errorf("加载资源失败: %w", err)
	}
	r, err := canvasrenderer.FromBundle(bundle)
	if err != nil {
		return nil, fmt.Errorf("初始化渲染器失败: %w", err)
	}
	return &app{
		cfg:     cfg,
		engine:  engine.New(r, layout.BuildOptions{}),
		fetcher: ics.NewFetcher(),
	}, nil
}

// run 串联数据读取、布局、绘制与导出。
func (a *app) run(ctx context.Context, bound any, month time.Time) error {
	data, err := a.load(ctx, bound, month)
	if err != nil {
		return err
	}
	result, err := a.engine.Render(data)
	if err != nil {
		return err
	}

	if a.cfg.Debug != "" {
		if err := writeDebug(result, a.cfg.Debug); err != nil {
			return err
		}
	}

	png, err := a.engine.Export()
	if err != nil {
		return fmt.Errorf("导出 PNG 失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.Output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(a.cfg.Output, png, 0o644); err != nil {
		return fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	tracer().Infof("wrote %s (%d bytes)", a.cfg.Output, len(png))
	return nil
}

func (a *app) load(ctx context.Context, bound any, month time.Time) (layout.FlyerData, error) {
	if a.cfg.ICS.URL == "" {
		if a.cfg.Input == "" {
			return layout.FlyerData{}, fmt.Errorf("没有数据来源：请指定 -in 或 -ics")
		}
		return layout.LoadFile(a.cfg.Input, bound)
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return layout.FlyerData{}, err
	}
	body, err := a.fetcher.Fetch(ctx, a.cfg.ICS.URL)
	if err != nil {
		return layout.FlyerData{}, err
	}
	data, err := ics.MonthFlyer(body, month, loc)
	if err != nil {
		return layout.FlyerData{}, fmt.Errorf("导入日历失败: %w", err)
	}
	// 数据文件可以为日历导入补充页眉与页脚文字。
	if a.cfg.Input != "" {
		extra, err := layout.LoadFile(a.cfg.Input, bound)
		if err != nil {
			return layout.FlyerData{}, err
		}
		data.TopDetails = extra.TopDetails
		data.BottomDetails = extra.BottomDetails
		if extra.Month != "" {
			data.Month = extra.Month
		}
	}
	return data, nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
