package requests

type FindAllAssessmentResults struct {
	ChildID string `validate:"omitempty,mongodb"`
	Risk    string `validate:"omitempty,oneof=all low medium high"`
	Sort    string `validate:"omitempty,oneof=newest oldest"`
	Search  string `validate:"max=100"`
}
