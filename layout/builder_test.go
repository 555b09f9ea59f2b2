package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleData() FlyerData {
	return FlyerData{
		Month:         "October",
		TopDetails:    "All events are free for members.\nBring a friend!",
		BottomDetails: "outclimb.example",
		Events: []EventRecord{
			{Day: "Sat 5", Name: "Bouldering Social", Location: "Main Gym", DetailsNum: 1, Details: "Shoe rental included."},
			{Day: "Sun 13", Name: "Top Rope Clinic"},
			{Day: "Fri 25", Name: "Halloween Climb", DetailsNum: 2, Details: "Costumes encouraged."},
		},
	}
}

func TestBuildRequiresMeasurer(t *testing.T) {
	_, err := Build(sampleData(), BuildOptions{})
	require.True(t, errors.Is(err, ErrNoMeasurer))
}

func TestBuildUsesDefaultsAndCountsLines(t *testing.T) {
	m := &fixedMeasurer{advance: 12, family: FamilyMedium}
	res, err := Build(sampleData(), BuildOptions{Measurer: m})
	require.NoError(t, err)

	// top: 2 行，空白，1. ...，空白，2. ...，空白，bottom
	require.Len(t, res.Lines, 8)
	require.Equal(t, Plan(3, 8), res.Dimensions)
	require.Equal(t, "October", res.Data.Month)
}

func TestBuildIsDeterministic(t *testing.T) {
	data := sampleData()
	a, err := Build(data, BuildOptions{Measurer: &fixedMeasurer{advance: 9}})
	require.NoError(t, err)
	b, err := Build(data, BuildOptions{Measurer: &fixedMeasurer{advance: 9}})
	require.NoError(t, err)
	require.Equal(t, a.Lines, b.Lines)
	require.Equal(t, a.Dimensions, b.Dimensions)
}

func TestBuildCustomWidthAndFont(t *testing.T) {
	m := &fixedMeasurer{advance: 10, family: "Narrow"}
	res, err := Build(FlyerData{TopDetails: "one two three"}, BuildOptions{
		Measurer: m,
		Font:     Font{Family: "Narrow", Size: 12},
		MaxWidth: 70,
	})
	require.NoError(t, err)
	require.Equal(t, []WrappedLine{
		{Content: "one two", Width: 70},
		{Content: "three", Width: 50},
	}, res.Lines)
}
