package screening

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func defaultBands(low, moderate float64) []RiskBand {
	return []RiskBand{
		{Level: 1, Label: "Mild", AltLabel: "Low", UpTo: ptr(low)},
		{Level: 2, Label: "Moderate", AltLabel: "Medium", UpTo: ptr(moderate)},
		{Level: 3, Label: "Severe", AltLabel: "High"},
	}
}

// flatInstrument builds an uncategorized binary instrument with n questions
// named Q1..Qn.
func flatInstrument(id string, n int) *Instrument {
	in := &Instrument{
		ID:          id,
		Name:        id,
		Version:     "test",
		AnswerScale: AnswerScale{Kind: ScaleBinary, Min: 0, Max: 1},
		RiskBands:   defaultBands(0.3, 0.7),
	}
	for i := 1; i <= n; i++ {
		in.Questions = append(in.Questions, Question{ID: fmt.Sprintf("Q%d", i), Number: i})
	}
	return in
}

// likertInstrument mirrors the ten-item results-view instrument on a 1-5
// scale.
func likertInstrument() *Instrument {
	membership := map[string]string{
		"A1": "communication", "A2": "communication", "A8": "communication",
		"A4": "social", "A6": "social", "A7": "social",
		"A10": "sensory",
		"A3": "behavioral", "A5": "behavioral", "A9": "behavioral",
	}
	in := &Instrument{
		ID:          "likert",
		Name:        "Likert",
		Version:     "test",
		AnswerScale: AnswerScale{Kind: ScaleLikert, Min: 1, Max: 5},
		Categories: []Category{
			{ID: "communication", Name: "Communication", ColorKey: ColorPink},
			{ID: "social", Name: "Social Interaction", ColorKey: ColorBlue},
			{ID: "sensory", Name: "Sensory", ColorKey: ColorGreen},
			{ID: "behavioral", Name: "Behavioral", ColorKey: ColorYellow},
		},
		RiskBands: defaultBands(2, 3.5),
	}
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("A%d", i)
		in.Questions = append(in.Questions, Question{ID: id, Number: i, CategoryID: membership[id]})
	}
	return in
}

func mustIndex(t *testing.T, in *Instrument) *Instrument {
	t.Helper()
	_, err := NewCatalog(in.ID, in)
	require.NoError(t, err)
	return in
}

func answersOf(instrumentID string, answers map[string]int) *ResponseSet {
	rs := NewResponseSet(instrumentID)
	for k, v := range answers {
		rs.Answers[k] = v
	}
	return rs
}
