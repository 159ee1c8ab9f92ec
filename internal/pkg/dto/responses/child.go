package responses

import "time"

type ChildCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AgeMonths int    `json:"ageMonths"`
}

type Child struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DateOfBirth   string    `json:"dateOfBirth"`
	AgeMonths     int       `json:"ageMonths"`
	Relationship  string    `json:"relationship"`
	Gender        string    `json:"gender"`
	Jaundice      bool      `json:"jaundice"`
	FamilyWithASD bool      `json:"familyWithASD"`
	Region        string    `json:"region,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
