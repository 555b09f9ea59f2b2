package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDebugJSON(t *testing.T) {
	res, err := Build(sampleData(), BuildOptions{Measurer: &fixedMeasurer{advance: 12}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, WriteDebugJSON(res, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc debugDoc
	require.NoError(t, json.Unmarshal(raw, &doc))

	w, h := res.Dimensions.PixelSize()
	require.Equal(t, [2]int{w, h}, doc.Pixels)
	require.Equal(t, "October", doc.Month)
	require.Len(t, doc.Rows, 3)
	require.Equal(t, HeaderHeight+RowHeight+RowGap, doc.Rows[1].Top)
	require.Equal(t, doc.Rows[1].Top+RowTextAnchor, doc.Rows[1].Anchor)
	require.Equal(t, 2, doc.Rows[2].DetailsNum)

	require.Len(t, doc.Lines, len(res.Lines))
	require.Equal(t, res.Dimensions.FooterTop()+RowGap, doc.Lines[0].Y)
	require.True(t, doc.Lines[2].Blank)
	require.Equal(t, ContentWidth, doc.LineBudget)

	require.Error(t, WriteDebugJSON(nil, path))
}
