package responses

import (
	"spectrum-sense-service/internal/pkg/screening"
	"time"
)

type Assessment struct {
	AttemptID  string             `json:"attemptId"`
	ChildID    string             `json:"childId"`
	ChildName  string             `json:"childName"`
	Instrument InstrumentSummary  `json:"instrument"`
	Answers    map[string]int     `json:"answers"`
	Progress   screening.Progress `json:"progress"`
	StartedAt  time.Time          `json:"startedAt"`
	ExpiresAt  time.Time          `json:"expiresAt"`
}

type AssessmentSectionQuestion struct {
	screening.Question
	Answer *int `json:"answer"`
}

type AssessmentSection struct {
	AttemptID string                      `json:"attemptId"`
	SectionID int                         `json:"sectionId"`
	Title     string                      `json:"title"`
	Questions []AssessmentSectionQuestion `json:"questions"`
	Passable  bool                        `json:"passable"`
	Progress  screening.Progress          `json:"progress"`
}

type SubmittedAssessment struct {
	Result  *AssessmentResult      `json:"result"`
	Chart   []screening.ChartPoint `json:"chart"`
	Summary screening.Summary      `json:"summary"`
}
