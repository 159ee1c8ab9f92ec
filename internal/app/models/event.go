package models

import "time"

type AssessmentCompletedEvent struct {
	Event        string    `json:"event"`
	ResultID     string    `json:"resultId"`
	GuardianID   string    `json:"guardianId"`
	ChildID      string    `json:"childId"`
	InstrumentID string    `json:"instrumentId"`
	RiskLevel    int       `json:"riskLevel"`
	RiskLabel    string    `json:"riskLabel"`
	OverallScore float64   `json:"overallScore"`
	CompletedAt  time.Time `json:"completedAt"`
}
