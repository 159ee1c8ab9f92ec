package models

import (
	"spectrum-sense-service/internal/pkg/screening"
	"time"
)

// AssessmentAttempt is the in-progress state of one screening. It lives in
// Redis and expires when abandoned.
type AssessmentAttempt struct {
	AttemptID    string         `json:"attemptId"`
	GuardianID   string         `json:"guardianId"`
	ChildID      string         `json:"childId"`
	ChildName    string         `json:"childName"`
	InstrumentID string         `json:"instrumentId"`
	Answers      map[string]int `json:"answers"`
	StartedAt    time.Time      `json:"startedAt"`
	ExpiresAt    time.Time      `json:"expiresAt"`
}

func (a *AssessmentAttempt) ResponseSet() *screening.ResponseSet {
	rs := screening.NewResponseSet(a.InstrumentID)
	for questionID, value := range a.Answers {
		rs.Answers[questionID] = value
	}
	return rs
}

func (a *AssessmentAttempt) SetResponseSet(rs *screening.ResponseSet) {
	a.Answers = make(map[string]int, len(rs.Answers))
	for questionID, value := range rs.Answers {
		a.Answers[questionID] = value
	}
}
