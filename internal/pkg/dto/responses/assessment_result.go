package responses

import (
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/screening"
	"time"
)

type AssessmentResult struct {
	ID                string                    `json:"id"`
	ChildID           string                    `json:"childId"`
	ChildName         string                    `json:"childName"`
	InstrumentID      string                    `json:"instrumentId"`
	InstrumentVersion string                    `json:"instrumentVersion"`
	OverallScore      float64                   `json:"overallScore"`
	MaxScale          float64                   `json:"maxScale"`
	RiskLevel         int                       `json:"riskLevel"`
	RiskLabel         string                    `json:"riskLabel"`
	RiskAltLabel      string                    `json:"riskAltLabel"`
	CategoryScores    []screening.CategoryScore `json:"categoryScores"`
	Indicators        *screening.Indicators     `json:"indicators,omitempty"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

type AssessmentResultDetail struct {
	AssessmentResult
	Chart   []screening.ChartPoint `json:"chart"`
	Summary screening.Summary      `json:"summary"`
}

func NewAssessmentResult(m *models.AssessmentResult) AssessmentResult {
	categoryScores := m.CategoryScores
	if categoryScores == nil {
		categoryScores = []screening.CategoryScore{}
	}
	return AssessmentResult{
		ID:                m.ID,
		ChildID:           m.ChildID,
		ChildName:         m.ChildName,
		InstrumentID:      m.InstrumentID,
		InstrumentVersion: m.InstrumentVersion,
		OverallScore:      m.OverallScore,
		MaxScale:          m.MaxScale,
		RiskLevel:         m.RiskLevel,
		RiskLabel:         m.RiskLabel,
		RiskAltLabel:      m.RiskAltLabel,
		CategoryScores:    categoryScores,
		Indicators:        m.Indicators,
		CreatedAt:         m.CreatedAt,
	}
}
