package layout

import (
	"fmt"
	"unicode/utf8"
)

// fixedMeasurer 每个字符宽 advance 像素，用于脱离真实字体测试换行。
type fixedMeasurer struct {
	advance float64
	family  string
	calls   int
}

func (m *fixedMeasurer) MeasureText(font Font, text string) (float64, error) {
	m.calls++
	if m.family != "" && font.Family != m.family {
		return 0, fmt.Errorf("font %s not registered", font.Family)
	}
	return float64(utf8.RuneCountInString(text)) * m.advance, nil
}
