// Package config 读取与保存传单生成器的 YAML 配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FontsConfig 指定粗体与中等字重的字体来源：文件路径或 "builtin:<name>"。
type FontsConfig struct {
	Bold   string `yaml:"bold"`
	Medium string `yaml:"medium"`
}

// ImagesConfig 指定背景图与 logo 的路径。
type ImagesConfig struct {
	Background string `yaml:"background"`
	Logo       string `yaml:"logo"`
}

// ICSConfig 描述日历订阅源。
type ICSConfig struct {
	// URL 可以是 http(s)/webcal 地址或本地文件路径。
	URL string `yaml:"url"`
	// Timezone 为 IANA 时区名，决定活动落在哪一天。
	Timezone string `yaml:"timezone"`
}

// Config 是顶层配置。相对路径以配置文件所在目录为基准。
type Config struct {
	Input   string       `yaml:"input"`
	Output  string       `yaml:"output"`
	Debug   string       `yaml:"debug,omitempty"`
	Fonts   FontsConfig  `yaml:"fonts"`
	Images  ImagesConfig `yaml:"images"`
	ICS     ICSConfig    `yaml:"ics"`
	Refresh string       `yaml:"refresh"`
	Trace   string       `yaml:"trace"`
}

const (
	defaultOutput   = "output/flyer.png"
	defaultRefresh  = "0 6 * * *"
	defaultTrace    = "Info"
	defaultTimezone = "Local"
)

// DefaultConfig 返回内存中的默认配置。
func DefaultConfig() *Config {
	return &Config{
		Output: defaultOutput,
		Fonts: FontsConfig{
			Bold:   "builtin:go-bold",
			Medium: "builtin:go-medium",
		},
		Images: ImagesConfig{
			Background: "images/background.webp",
			Logo:       "images/logo.webp",
		},
		ICS:     ICSConfig{Timezone: defaultTimezone},
		Refresh: defaultRefresh,
		Trace:   defaultTrace,
	}
}

// Normalize 为缺失的字段填入默认值。
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Fonts.Bold == "" {
		c.Fonts.Bold = d.Fonts.Bold
	}
	if c.Fonts.Medium == "" {
		c.Fonts.Medium = d.Fonts.Medium
	}
	if c.Images.Background == "" {
		c.Images.Background = d.Images.Background
	}
	if c.Images.Logo == "" {
		c.Images.Logo = d.Images.Logo
	}
	if c.ICS.Timezone == "" {
		c.ICS.Timezone = d.ICS.Timezone
	}
	if c.Refresh == "" {
		c.Refresh = d.Refresh
	}
	switch c.Trace {
	case "Debug", "Info", "Error":
	default:
		c.Trace = d.Trace
	}
}

// Location 解析 ICS.Timezone。
func (c *Config) Location() (*time.Location, error) {
	if c.ICS.Timezone == "" || c.ICS.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ICS.Timezone)
	if err != nil {
		return nil, fmt.Errorf("无效的时区 %q: %w", c.ICS.Timezone, err)
	}
	return loc, nil
}

// ResolvePaths 把配置中的相对路径改为相对 baseDir（通常是配置文件所在目录）。
// 内置字体与 http(s)/webcal 地址保持不变。
func (c *Config) ResolvePaths(baseDir string) {
	for _, p := range []*string{
		&c.Input, &c.Output, &c.Debug,
		&c.Fonts.Bold, &c.Fonts.Medium,
		&c.Images.Background, &c.Images.Logo,
		&c.ICS.URL,
	} {
		*p = resolve(baseDir, *p)
	}
}

func resolve(baseDir, path string) string {
	if baseDir == "" || path == "" || filepath.IsAbs(path) || isRemoteOrBuiltin(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func isRemoteOrBuiltin(path string) bool {
	for _, prefix := range []string{"builtin:", "built-in:", "http://", "https://", "webcal://"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Load 读取 YAML 配置；文件不存在时返回默认配置。
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("配置文件路径为空")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置 %s 失败: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save 以 0600 权限原子写入配置：先写临时文件，再重命名。
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("配置文件路径为空")
	}
	if cfg == nil {
		return errors.New("配置为空")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".flyer-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
