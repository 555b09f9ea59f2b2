package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

var builtin = map[string][]byte{
	"go-bold":    gobold.TTF,
	"go-medium":  gomedium.TTF,
	"go-regular": goregular.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "builtin:go-bold" 或直接 "go-bold"。
func Load(name string) ([]byte, error) {
	name = strings.TrimPrefix(strings.TrimPrefix(name, "built-in:"), "builtin:")
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %s（可用：%s）", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// IsBuiltin 判断 src 是否引用内置字体。
func IsBuiltin(src string) bool {
	return strings.HasPrefix(src, "builtin:") || strings.HasPrefix(src, "built-in:")
}

// Names 返回全部内置字体名。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
