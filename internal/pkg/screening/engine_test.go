package screening

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_CategorizedLikert(t *testing.T) {
	in := mustIndex(t, likertInstrument())
	rs := answersOf(in.ID, map[string]int{
		"A1": 2, "A2": 3, "A3": 1, "A4": 4, "A5": 2,
		"A6": 3, "A7": 5, "A8": 2, "A9": 1, "A10": 4,
	})

	result, err := Score(in, rs)
	require.NoError(t, err)

	require.Len(t, result.CategoryScores, 4)
	byID := map[string]CategoryScore{}
	for _, cs := range result.CategoryScores {
		byID[cs.CategoryID] = cs
	}
	assert.InDelta(t, 7.0/3, byID["communication"].Score, 1e-9)
	assert.InDelta(t, 4.0, byID["social"].Score, 1e-9)
	assert.InDelta(t, 4.0, byID["sensory"].Score, 1e-9)
	assert.InDelta(t, 4.0/3, byID["behavioral"].Score, 1e-9)

	assert.Equal(t, 47, byID["communication"].Percent)
	assert.Equal(t, 80, byID["social"].Percent)
	assert.Equal(t, 27, byID["behavioral"].Percent)

	assert.InDelta(t, 2.9167, result.OverallScore, 1e-3)
	assert.Equal(t, 2, result.RiskLevel)
	assert.Equal(t, "Moderate", result.RiskLabel)
	assert.Equal(t, 5.0, result.MaxScale)
	assert.Equal(t, 58, result.Percent())
	assert.Nil(t, result.Indicators)
}

func TestScore_DefaultCatalogScenarioInstrument(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	in, err := catalog.Instrument("asd10")
	require.NoError(t, err)

	rs := answersOf(in.ID, map[string]int{
		"A1": 2, "A2": 3, "A3": 1, "A4": 4, "A5": 2,
		"A6": 3, "A7": 5, "A8": 2, "A9": 1, "A10": 4,
	})
	result, err := Score(in, rs)
	require.NoError(t, err)
	assert.InDelta(t, 2.9167, result.OverallScore, 1e-3)
	assert.Equal(t, 2, result.RiskLevel)
}

func TestScore_OverallTracksMeanOfCategoryPercents(t *testing.T) {
	in := mustIndex(t, likertInstrument())
	rs := answersOf(in.ID, map[string]int{
		"A1": 2, "A2": 3, "A3": 1, "A4": 4, "A5": 2,
		"A6": 3, "A7": 5, "A8": 2, "A9": 1, "A10": 4,
	})
	result, err := Score(in, rs)
	require.NoError(t, err)

	var sum float64
	for _, cs := range result.CategoryScores {
		sum += float64(cs.Percent)
	}
	mean := sum / float64(len(result.CategoryScores))
	assert.InDelta(t, mean, float64(result.Percent()), 1)
}

func TestScore_BandBoundaries(t *testing.T) {
	in := mustIndex(t, likertInstrument())

	tests := []struct {
		score float64
		want  int
	}{
		{score: 1, want: 1},
		{score: 2.0, want: 1},
		{score: 2.01, want: 2},
		{score: 3.5, want: 2},
		{score: 3.51, want: 3},
		{score: 5, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, in.Classify(tt.score).Level, "score %v", tt.score)
	}
}

func TestScore_ReverseScoredItem(t *testing.T) {
	in := &Instrument{
		ID:          "rev",
		Version:     "test",
		AnswerScale: AnswerScale{Kind: ScaleLikert, Min: 1, Max: 4},
		Questions: []Question{
			{ID: "R1", Number: 1, ReverseScored: true},
		},
		RiskBands: defaultBands(2, 3),
	}
	mustIndex(t, in)

	result, err := Score(in, answersOf("rev", map[string]int{"R1": 4}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.OverallScore)
	assert.Equal(t, 1, result.RiskLevel)

	result, err = Score(in, answersOf("rev", map[string]int{"R1": 1}))
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.OverallScore)
	assert.Equal(t, 3, result.RiskLevel)
}

func mchatAnswers(t *testing.T, in *Instrument, risky func(q Question) bool) *ResponseSet {
	t.Helper()
	rs := NewResponseSet(in.ID)
	for _, q := range in.Questions {
		// Reverse-scored items indicate risk on "No".
		yes := q.ReverseScored != risky(q)
		if yes {
			rs.Answers[q.ID] = 1
		} else {
			rs.Answers[q.ID] = 0
		}
	}
	return rs
}

func TestScore_MChatExtremes(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	mchat, err := catalog.Instrument("mchat")
	require.NoError(t, err)

	low, err := Score(mchat, mchatAnswers(t, mchat, func(Question) bool { return false }))
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.OverallScore)
	assert.Equal(t, 1, low.RiskLevel)
	assert.Empty(t, low.CategoryScores)
	require.NotNil(t, low.Indicators)
	assert.Equal(t, Indicators{}, *low.Indicators)

	high, err := Score(mchat, mchatAnswers(t, mchat, func(Question) bool { return true }))
	require.NoError(t, err)
	assert.Equal(t, 1.0, high.OverallScore)
	assert.Equal(t, 3, high.RiskLevel)
	require.NotNil(t, high.Indicators)
	assert.Equal(t, 23, high.Indicators.FailedCount)
	assert.Equal(t, 7, high.Indicators.CriticalFailedCount)
	assert.True(t, high.Indicators.Flagged)
}

func TestScore_MChatCriticalFlagDoesNotChangeLevel(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	mchat, err := catalog.Instrument("mchat")
	require.NoError(t, err)

	critical := map[string]bool{"Q2": true, "Q5": true}
	result, err := Score(mchat, mchatAnswers(t, mchat, func(q Question) bool { return critical[q.ID] }))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Indicators.FailedCount)
	assert.Equal(t, 2, result.Indicators.CriticalFailedCount)
	assert.True(t, result.Indicators.Flagged)
	assert.Equal(t, 1, result.RiskLevel)
}

func TestScore_Deterministic(t *testing.T) {
	in := mustIndex(t, likertInstrument())
	rs := NewResponseSet(in.ID)
	for i := 1; i <= 10; i++ {
		rs.Answers[fmt.Sprintf("A%d", i)] = i%5 + 1
	}

	first, err := Score(in, rs)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Score(in, rs.Clone())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScore_IncompleteResponseSet(t *testing.T) {
	in := mustIndex(t, flatInstrument("ten", 10))
	rs := NewResponseSet(in.ID)
	for i := 1; i <= 9; i++ {
		rs.Answers[fmt.Sprintf("Q%d", i)] = 1
	}

	_, err := Score(in, rs)
	assert.ErrorIs(t, err, ErrIncompleteResponseSet)
	assert.Contains(t, err.Error(), "9 of 10")
}

func TestScore_RejectsInvalidAndMismatched(t *testing.T) {
	in := mustIndex(t, flatInstrument("two", 2))

	_, err := Score(in, answersOf("two", map[string]int{"Q1": 1, "Q2": 2}))
	assert.ErrorIs(t, err, ErrInvalidAnswerValue)

	_, err = Score(in, answersOf("other", map[string]int{"Q1": 1, "Q2": 1}))
	assert.ErrorIs(t, err, ErrInstrumentMismatch)
}

func TestScore_DoesNotModifyInput(t *testing.T) {
	in := mustIndex(t, likertInstrument())
	rs := &ResponseSet{InstrumentID: in.ID}

	_, err := Score(in, rs)
	assert.ErrorIs(t, err, ErrIncompleteResponseSet)
	assert.Nil(t, rs.Answers)
}
