package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/robfig/cron/v3"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/config"
)

// tracer traces with key 'flyer.cli'
func tracer() tracing.Trace {
	return tracing.Select("flyer.cli")
}

var traceKeys = []string{"flyer.cli", "flyer.layout", "flyer.render", "flyer.engine", "flyer.ics"}

func main() {
	configPath := flag.String("config", "flyer.yaml", "YAML 配置文件路径")
	input := flag.String("in", "", "传单数据文件（.json / .yaml / .flyer）")
	dataJSON := flag.String("data", "", "绑定到 .flyer 文件的 JSON 数据")
	output := flag.String("out", "", "PNG 输出路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	icsSource := flag.String("ics", "", "ICS 日历地址或文件，替代 -in")
	month := flag.String("month", "", "ICS 导入的月份，格式 2006-01，默认本月")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	watch := flag.Bool("watch", false, "按配置中的 refresh 计划反复生成")
	writeConfig := flag.Bool("write-config", false, "把合并后的配置写回 -config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	applyFlags := func(c *config.Config) {
		overrideString(&c.Input, *input)
		overrideString(&c.Output, *output)
		overrideString(&c.Debug, *debug)
		overrideString(&c.ICS.URL, *icsSource)
		overrideString(&c.Trace, *tlevel)
		c.Normalize()
	}
	if *writeConfig {
		saved := *cfg
		applyFlags(&saved)
		if err := config.Save(*configPath, &saved); err != nil {
			pterm.Error.Printf("写入配置失败: %v\n", err)
			os.Exit(1)
		}
		pterm.Info.Printf("已写入配置：%s\n", *configPath)
	}
	// 配置文件里的路径相对配置文件，命令行参数相对当前目录。
	cfg.ResolvePaths(filepath.Dir(*configPath))
	applyFlags(cfg)

	if err := setupTracing(cfg.Trace); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	var bound any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &bound); err != nil {
			pterm.Error.Printf("解析 data JSON 失败: %v\n", err)
			os.Exit(1)
		}
	}
	target := time.Now()
	if *month != "" {
		if target, err = time.Parse("2006-01", *month); err != nil {
			pterm.Error.Printf("无效的月份 %q: %v\n", *month, err)
			os.Exit(1)
		}
	}

	a, err := newApp(cfg, "")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fixedMonth := *month != ""
	render := func() error {
		m := target
		if !fixedMonth {
			m = time.Now()
		}
		return a.run(ctx, bound, m)
	}

	if err := render(); err != nil {
		pterm.Error.Printf("生成传单失败: %v\n", err)
		if !*watch {
			os.Exit(4)
		}
	} else {
		pterm.Info.Printf("已生成传单：%s\n", cfg.Output)
	}
	if !*watch {
		return
	}

	if err := runWatch(ctx, cfg.Refresh, render); err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
}

// runWatch re-renders on schedule until ctx is cancelled.
func runWatch(ctx context.Context, spec string, render func() error) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := render(); err != nil {
			tracer().Errorf("scheduled render failed: %v", err)
			return
		}
		tracer().Infof("scheduled render done")
	}); err != nil {
		return fmt.Errorf("无效的 refresh 计划 %q: %w", spec, err)
	}
	pterm.Info.Printf("按计划 %q 刷新，Ctrl-C 退出\n", spec)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("配置 tracing 失败: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", level)
		}
	}
	return nil
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
