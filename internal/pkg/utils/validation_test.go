package utils

import (
	"testing"
	"time"

	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func validChild() *requests.CreateChild {
	return &requests.CreateChild{
		Name:          "Aiden",
		DateOfBirth:   "2022-05-17",
		Relationship:  "mother",
		Gender:        "boy",
		Jaundice:      boolPtr(false),
		FamilyWithASD: boolPtr(true),
	}
}

func TestValidateStruct_CreateChild(t *testing.T) {
	assert.NoError(t, ValidateStruct(validChild()))

	t.Run("gender outside enum", func(t *testing.T) {
		child := validChild()
		child.Gender = "other"
		err := ValidateStruct(child)
		assert.Error(t, err)
		assert.Equal(t, "gender must be one of [boy, girl]", exceptions.FormatFirstValidationError(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		child := validChild()
		child.DateOfBirth = "17-05-2022"
		assert.Error(t, ValidateStruct(child))
	})

	t.Run("future date", func(t *testing.T) {
		child := validChild()
		child.DateOfBirth = FormatDate(time.Now().AddDate(0, 1, 0))
		err := ValidateStruct(child)
		assert.Error(t, err)
		assert.Equal(t, "date of birth cannot be in the future", exceptions.FormatFirstValidationError(err))
	})

	t.Run("missing flags", func(t *testing.T) {
		child := validChild()
		child.Jaundice = nil
		err := ValidateStruct(child)
		assert.Error(t, err)
		assert.Equal(t, "jaundice is required", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateStruct_Password(t *testing.T) {
	request := &requests.RegisterUser{Name: "Rina", Email: "rina@example.com", Password: "Secret#123"}
	assert.NoError(t, ValidateStruct(request))

	for _, weak := range []string{"short#A", "nouppercase#1", "NoSpecial123"} {
		request.Password = weak
		assert.Error(t, ValidateStruct(request), weak)
	}
}
