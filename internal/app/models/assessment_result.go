package models

import (
	"spectrum-sense-service/internal/pkg/screening"
	"time"
)

// AssessmentResult is one completed screening. Records are only ever
// inserted and hold the scores, never the raw answers.
type AssessmentResult struct {
	ID                string                    `bson:"_id,omitempty"`
	GuardianID        string                    `bson:"guardianId"`
	ChildID           string                    `bson:"childId"`
	ChildName         string                    `bson:"childName"`
	InstrumentID      string                    `bson:"instrumentId"`
	InstrumentVersion string                    `bson:"instrumentVersion"`
	OverallScore      float64                   `bson:"overallScore"`
	MaxScale          float64                   `bson:"maxScale"`
	RiskLevel         int                       `bson:"riskLevel"`
	RiskLabel         string                    `bson:"riskLabel"`
	RiskAltLabel      string                    `bson:"riskAltLabel"`
	CategoryScores    []screening.CategoryScore `bson:"categoryScores"`
	Indicators        *screening.Indicators     `bson:"indicators,omitempty"`
	CreatedAt         time.Time                 `bson:"createdAt"`
}

// ScoreResult rebuilds the scoring engine output stored in the record.
func (m *AssessmentResult) ScoreResult() *screening.ScoreResult {
	categoryScores := m.CategoryScores
	if categoryScores == nil {
		categoryScores = []screening.CategoryScore{}
	}
	return &screening.ScoreResult{
		InstrumentID:      m.InstrumentID,
		InstrumentVersion: m.InstrumentVersion,
		OverallScore:      m.OverallScore,
		MaxScale:          m.MaxScale,
		RiskLevel:         m.RiskLevel,
		RiskLabel:         m.RiskLabel,
		RiskAltLabel:      m.RiskAltLabel,
		CategoryScores:    categoryScores,
		Indicators:        m.Indicators,
	}
}

// AssessmentResultFilter narrows the result history of one guardian.
type AssessmentResultFilter struct {
	GuardianID  string
	ChildID     string
	RiskLevel   int
	Search      string
	OldestFirst bool
}
