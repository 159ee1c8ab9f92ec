package requests

type CreateChild struct {
	Name          string `json:"name" validate:"required,max=100"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02,not_future"`
	Relationship  string `json:"relationship" validate:"required,max=50"`
	Gender        string `json:"gender" validate:"required,oneof=boy girl"`
	Jaundice      *bool  `json:"jaundice" validate:"required"`
	FamilyWithASD *bool  `json:"familyWithASD" validate:"required"`
	Region        string `json:"region" validate:"max=100"`
}
