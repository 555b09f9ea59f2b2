package layout

import (
	"strconv"
	"strings"
)

// Wrap 将页眉文字、各活动的补充说明与页脚文字按贪心算法折成不超过 maxWidth 的行。
//
// 顺序：top 的各段落，随后每个 Details 非空的活动生成 "<DetailsNum>. <Details>" 段落，
// 最后是 bottom 的各段落。两个非空区块之间插入一行空白分隔。
// 单个单词超过 maxWidth 时独占一行，不在词内拆分。
func Wrap(m Measurer, font Font, maxWidth float64, top string, events []EventRecord, bottom string) ([]WrappedLine, error) {
	var lines []WrappedLine

	appendSection := func(text string) error {
		section, err := wrapParagraphs(m, font, maxWidth, text)
		if err != nil {
			return err
		}
		if len(section) == 0 {
			return nil
		}
		if len(lines) > 0 {
			lines = append(lines, WrappedLine{Blank: true})
		}
		lines = append(lines, section...)
		return nil
	}

	// 页眉区块前面没有任何内容，不需要分隔。
	if err := appendSection(top); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if len(ev.Details) == 0 {
			continue
		}
		if err := appendSection(detailsParagraph(ev)); err != nil {
			return nil, err
		}
	}
	if err := appendSection(bottom); err != nil {
		return nil, err
	}

	tracer().Debugf("wrap: %d lines at max width %g (%s)", len(lines), maxWidth, font)
	return lines, nil
}

// detailsParagraph 即使 DetailsNum 为 0 也会带上 "0. " 前缀。
func detailsParagraph(ev EventRecord) string {
	return strconv.Itoa(ev.DetailsNum) + ". " + ev.Details
}

func wrapParagraphs(m Measurer, font Font, maxWidth float64, text string) ([]WrappedLine, error) {
	var out []WrappedLine
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, paragraph := range strings.Split(text, "\n") {
		lines, err := wrapParagraph(m, font, maxWidth, paragraph)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func wrapParagraph(m Measurer, font Font, maxWidth float64, paragraph string) ([]WrappedLine, error) {
	var (
		lines   []WrappedLine
		working []string
		width   float64
	)
	flush := func() {
		if len(working) == 0 {
			return
		}
		lines = append(lines, WrappedLine{Content: strings.Join(working, " "), Width: width})
		working = working[:0]
		width = 0
	}

	for _, word := range strings.Fields(paragraph) {
		candidate := word
		if len(working) > 0 {
			candidate = strings.Join(working, " ") + " " + word
		}
		w, err := m.MeasureText(font, candidate)
		if err != nil {
			return nil, err
		}
		if w > maxWidth && len(working) > 0 {
			flush()
			if w, err = m.MeasureText(font, word); err != nil {
				return nil, err
			}
		}
		working = append(working, word)
		width = w
	}
	flush()
	return lines, nil
}
