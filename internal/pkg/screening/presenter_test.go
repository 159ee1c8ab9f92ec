package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToChartSeries_Categorized(t *testing.T) {
	in := mustIndex(t, likertInstrument())
	result, err := Score(in, answersOf(in.ID, map[string]int{
		"A1": 2, "A2": 3, "A3": 1, "A4": 4, "A5": 2,
		"A6": 3, "A7": 5, "A8": 2, "A9": 1, "A10": 4,
	}))
	require.NoError(t, err)

	series := ToChartSeries(in, result)
	require.Len(t, series, 4)
	assert.Equal(t, "communication", series[0].CategoryID)
	assert.Equal(t, ColorPink, series[0].ColorKey)
	assert.Equal(t, ColorBlue, series[1].ColorKey)
	assert.Equal(t, 80, series[1].Percent)
}

func TestToChartSeries_FlatInstrumentHasOverallPoint(t *testing.T) {
	in := mustIndex(t, flatInstrument("flat", 4))
	result, err := Score(in, answersOf(in.ID, map[string]int{"Q1": 1, "Q2": 0, "Q3": 0, "Q4": 0}))
	require.NoError(t, err)

	series := ToChartSeries(in, result)
	require.Len(t, series, 1)
	assert.Equal(t, "Overall", series[0].Label)
	assert.Equal(t, ColorOverall, series[0].ColorKey)
	assert.Equal(t, 0.25, series[0].Value)
	assert.Equal(t, 25, series[0].Percent)
}

func TestCategoryColor_StableAcrossResults(t *testing.T) {
	first := CategoryColor("motor", "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CategoryColor("motor", ""))
	}
	assert.Contains(t, categoryPalette, first)
	assert.Equal(t, first, CategoryColor("motor", "not-a-colour"))
	assert.Equal(t, ColorPurple, CategoryColor("motor", ColorPurple))
}

func TestSummarize(t *testing.T) {
	result := &ScoreResult{
		OverallScore: 4.5,
		MaxScale:     5,
		RiskLevel:    3,
		RiskLabel:    "Severe",
		RiskAltLabel: "High",
	}
	assert.Equal(t, Summary{
		Level:    3,
		Label:    "Severe",
		AltLabel: "High",
		Percent:  90,
		ColorKey: ColorLevelHigh,
	}, Summarize(result))

	assert.Equal(t, ColorLevelLow, LevelColor(1))
	assert.Equal(t, ColorLevelModerate, LevelColor(2))
}
