package responses

import "spectrum-sense-service/internal/pkg/screening"

type InstrumentSummary struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Version        string              `json:"version"`
	Description    string              `json:"description,omitempty"`
	AgeRangeMonths *screening.AgeRange `json:"ageRangeMonths,omitempty"`
	ScaleKind      string              `json:"scaleKind"`
	QuestionCount  int                 `json:"questionCount"`
	Sectioned      bool                `json:"sectioned"`
	Categorized    bool                `json:"categorized"`
}

type SelectedInstrument struct {
	AgeMonths  int               `json:"ageMonths"`
	Instrument InstrumentSummary `json:"instrument"`
}

// ScoredAnswers is the outcome of scoring a response set, with the chart
// projection the results view renders.
type ScoredAnswers struct {
	Result  *screening.ScoreResult `json:"result"`
	Chart   []screening.ChartPoint `json:"chart"`
	Summary screening.Summary      `json:"summary"`
}

func NewInstrumentSummary(instrument *screening.Instrument) InstrumentSummary {
	return InstrumentSummary{
		ID:             instrument.ID,
		Name:           instrument.Name,
		Version:        instrument.Version,
		Description:    instrument.Description,
		AgeRangeMonths: instrument.AgeRange,
		ScaleKind:      string(instrument.AnswerScale.Kind),
		QuestionCount:  instrument.QuestionCount(),
		Sectioned:      instrument.Sectioned(),
		Categorized:    instrument.Categorized(),
	}
}

func NewScoredAnswers(instrument *screening.Instrument, result *screening.ScoreResult) *ScoredAnswers {
	return &ScoredAnswers{
		Result:  result,
		Chart:   screening.ToChartSeries(instrument, result),
		Summary: screening.Summarize(result),
	}
}
