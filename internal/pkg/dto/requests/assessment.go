package requests

type StartAssessment struct {
	ChildID string `json:"childId" validate:"required,mongodb"`
}

type RecordAnswer struct {
	QuestionID string `json:"questionId" validate:"required,max=32"`
	Value      *int   `json:"value" validate:"required"`
}

// ScoreAnswers carries a whole response set for stateless scoring.
type ScoreAnswers struct {
	Answers map[string]int `json:"answers" validate:"required"`
}
