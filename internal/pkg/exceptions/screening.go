package exceptions

import (
	"errors"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/screening"
)

var (
	ErrScreeningInvalidAnswer = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAnswer, constvars.ErrDevScreeningInvalidAnswer)
	}
	ErrScreeningUnknownQuestion = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownQuestion, constvars.ErrDevScreeningUnknownQuestion)
	}
	ErrScreeningUnknownSection = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownSection, constvars.ErrDevScreeningUnknownSection)
	}
	ErrScreeningUnknownInstrument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUnknownInstrument, constvars.ErrDevScreeningUnknownInstrument)
	}
	ErrScreeningIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientIncompleteAssessment, constvars.ErrDevScreeningIncomplete)
	}
	ErrScreeningInstrumentMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevScreeningInstrumentMismatch)
	}
)

// FromScreeningError translates a screening sentinel into its HTTP facing
// CustomError. Errors of other kinds are returned untouched.
func FromScreeningError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screening.ErrInvalidAnswerValue):
		return ErrScreeningInvalidAnswer(err)
	case errors.Is(err, screening.ErrUnknownQuestion):
		return ErrScreeningUnknownQuestion(err)
	case errors.Is(err, screening.ErrUnknownSection):
		return ErrScreeningUnknownSection(err)
	case errors.Is(err, screening.ErrUnknownInstrument):
		return ErrScreeningUnknownInstrument(err)
	case errors.Is(err, screening.ErrIncompleteResponseSet):
		return ErrScreeningIncomplete(err)
	case errors.Is(err, screening.ErrInstrumentMismatch):
		return ErrScreeningInstrumentMismatch(err)
	default:
		return err
	}
}
