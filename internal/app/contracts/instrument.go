package contracts

import (
	"context"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/screening"
)

type InstrumentUsecase interface {
	ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error)
	GetInstrument(ctx context.Context, instrumentID string) (*screening.Instrument, error)
	SelectInstrument(ctx context.Context, ageMonths int) (*responses.SelectedInstrument, error)
	ScoreAnswers(ctx context.Context, instrumentID string, request *requests.ScoreAnswers) (*responses.ScoredAnswers, error)
}
