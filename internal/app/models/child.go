package models

import "time"

type Child struct {
	ID            string    `bson:"_id,omitempty"`
	GuardianID    string    `bson:"guardianId"`
	Name          string    `bson:"name"`
	DateOfBirth   time.Time `bson:"dateOfBirth"`
	Relationship  string    `bson:"relationship"`
	Gender        string    `bson:"gender"`
	Jaundice      bool      `bson:"jaundice"`
	FamilyWithASD bool      `bson:"familyWithASD"`
	Region        string    `bson:"region,omitempty"`
	TimeModel     `bson:",inline"`
}
