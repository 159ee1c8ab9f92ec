package screening

import (
	"fmt"
	"math"
)

const (
	criticalFailThreshold = 2
	totalFailThreshold    = 3
)

type CategoryScore struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Percent    int     `json:"percent"`
}

// Indicators counts risk-indicating answers on binary instruments that
// declare critical items. They are informational and never change the risk
// level.
type Indicators struct {
	FailedCount         int  `json:"failedCount"`
	CriticalFailedCount int  `json:"criticalFailedCount"`
	Flagged             bool `json:"flagged"`
}

// ScoreResult is the immutable output of Score.
type ScoreResult struct {
	InstrumentID      string          `json:"instrumentId"`
	InstrumentVersion string          `json:"instrumentVersion"`
	OverallScore      float64         `json:"overallScore"`
	MaxScale          float64         `json:"maxScale"`
	RiskLevel         int             `json:"riskLevel"`
	RiskLabel         string          `json:"riskLabel"`
	RiskAltLabel      string          `json:"riskAltLabel"`
	CategoryScores    []CategoryScore `json:"categoryScores"`
	Indicators        *Indicators     `json:"indicators,omitempty"`
}

// Percent is the overall score as a share of the scale maximum.
func (r *ScoreResult) Percent() int {
	return percentOf(r.OverallScore, r.MaxScale)
}

// Score computes the result for a complete response set. It is a pure
// function of the instrument and the answers: values are summed in
// instrument order so repeated calls give bit-identical output.
func Score(instrument *Instrument, rs *ResponseSet) (*ScoreResult, error) {
	collector, err := NewCollector(instrument, rs)
	if err != nil {
		return nil, err
	}
	if !collector.IsComplete() {
		p := collector.Progress()
		return nil, fmt.Errorf("%w: %d of %d answered", ErrIncompleteResponseSet, p.Answered, p.Total)
	}

	resolved := make(map[string]int, instrument.QuestionCount())
	for _, q := range instrument.Questions {
		resolved[q.ID] = resolve(instrument.AnswerScale, q, rs.Answers[q.ID])
	}

	maxScale := instrument.MaxScale()
	result := &ScoreResult{
		InstrumentID:      instrument.ID,
		InstrumentVersion: instrument.Version,
		MaxScale:          maxScale,
		CategoryScores:    []CategoryScore{},
	}

	if instrument.Categorized() {
		var sum float64
		for _, cat := range instrument.Categories {
			score := meanOf(cat.QuestionIDs, resolved)
			result.CategoryScores = append(result.CategoryScores, CategoryScore{
				CategoryID: cat.ID,
				Name:       cat.Name,
				Score:      score,
				Percent:    percentOf(score, maxScale),
			})
			sum += score
		}
		result.OverallScore = sum / float64(len(instrument.Categories))
	} else {
		ids := make([]string, 0, instrument.QuestionCount())
		for _, q := range instrument.Questions {
			ids = append(ids, q.ID)
		}
		result.OverallScore = meanOf(ids, resolved)
	}

	band := instrument.Classify(result.OverallScore)
	result.RiskLevel = band.Level
	result.RiskLabel = band.Label
	result.RiskAltLabel = band.AltLabel

	if instrument.AnswerScale.Kind == ScaleBinary && len(instrument.CriticalQuestionIDs) > 0 {
		result.Indicators = indicatorsFor(instrument, resolved)
	}
	return result, nil
}

// resolve applies reverse scoring so that a higher value always means more
// risk.
func resolve(scale AnswerScale, q Question, raw int) int {
	if q.ReverseScored {
		return scale.Invert(raw)
	}
	return raw
}

func meanOf(ids []string, resolved map[string]int) float64 {
	var sum float64
	for _, id := range ids {
		sum += float64(resolved[id])
	}
	return sum / float64(len(ids))
}

func percentOf(score, maxScale float64) int {
	return int(math.Round(100 * score / maxScale))
}

func indicatorsFor(instrument *Instrument, resolved map[string]int) *Indicators {
	failed := func(id string) bool {
		return resolved[id] == instrument.AnswerScale.Max
	}
	ind := &Indicators{}
	for _, q := range instrument.Questions {
		if failed(q.ID) {
			ind.FailedCount++
		}
	}
	for _, id := range instrument.CriticalQuestionIDs {
		if failed(id) {
			ind.CriticalFailedCount++
		}
	}
	ind.Flagged = ind.CriticalFailedCount >= criticalFailThreshold || ind.FailedCount >= totalFailThreshold
	return ind
}
