package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// debugRow 记录一行活动的几何位置。
type debugRow struct {
	Day        string  `json:"day"`
	Name       string  `json:"name"`
	Top        float64 `json:"top"`
	Anchor     float64 `json:"anchor"`
	DetailsNum int     `json:"detailsNum,omitempty"`
}

// debugLine 记录页脚的一行及其绘制位置。
type debugLine struct {
	Y       float64 `json:"y"`
	Content string  `json:"content,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Blank   bool    `json:"blank,omitempty"`
}

type debugDoc struct {
	Month      string        `json:"month"`
	Pixels     [2]int        `json:"pixels"`
	Metrics    LayoutMetrics `json:"metrics"`
	FooterTop  float64       `json:"footerTop"`
	Rows       []debugRow    `json:"rows"`
	Lines      []debugLine   `json:"lines"`
	LineBudget float64       `json:"lineBudget"`
}

func newDebugDoc(res *Result) debugDoc {
	d := res.Dimensions
	w, h := d.PixelSize()
	doc := debugDoc{
		Month:      res.Data.Month,
		Pixels:     [2]int{w, h},
		Metrics:    d.Details,
		FooterTop:  d.FooterTop(),
		Rows:       make([]debugRow, 0, len(res.Data.Events)),
		Lines:      make([]debugLine, 0, len(res.Lines)),
		LineBudget: ContentWidth,
	}
	for i, ev := range res.Data.Events {
		doc.Rows = append(doc.Rows, debugRow{
			Day:        ev.Day,
			Name:       ev.Name,
			Top:        d.RowTop(i),
			Anchor:     d.RowAnchor(i),
			DetailsNum: ev.DetailsNum,
		})
	}
	for i, ln := range res.Lines {
		doc.Lines = append(doc.Lines, debugLine{
			Y:       doc.FooterTop + d.Details.RowGap + LinePitch*float64(i),
			Content: ln.Content,
			Width:   ln.Width,
			Blank:   ln.Blank,
		})
	}
	return doc
}

// WriteDebugJSON 输出传单的几何信息：画布像素尺寸、每行活动的顶部与基线、页脚每行的位置与宽度。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return fmt.Errorf("布局结果为空")
	}
	data, err := json.MarshalIndent(newDebugDoc(res), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
