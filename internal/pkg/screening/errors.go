package screening

import "errors"

var (
	// ErrInvalidAnswerValue is returned when a raw value is outside the
	// instrument's answer scale. The response set is left unchanged.
	ErrInvalidAnswerValue = errors.New("screening: invalid answer value")

	// ErrIncompleteResponseSet is returned when scoring is attempted before
	// every question has an answer. No partial result is produced.
	ErrIncompleteResponseSet = errors.New("screening: incomplete response set")

	ErrUnknownInstrument  = errors.New("screening: unknown instrument")
	ErrUnknownQuestion    = errors.New("screening: unknown question")
	ErrUnknownSection     = errors.New("screening: unknown section")
	ErrInstrumentMismatch = errors.New("screening: response set belongs to another instrument")

	// ErrInvalidCatalog wraps every invariant violation found while loading
	// instrument definitions.
	ErrInvalidCatalog = errors.New("screening: invalid catalog")
)
