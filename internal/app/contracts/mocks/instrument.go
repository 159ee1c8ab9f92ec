package mocks

import (
	"context"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/dto/responses"
	"spectrum-sense-service/internal/pkg/screening"

	"github.com/stretchr/testify/mock"
)

type MockInstrumentUsecase struct {
	mock.Mock
}

func (m *MockInstrumentUsecase) ListInstruments(ctx context.Context) ([]responses.InstrumentSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]responses.InstrumentSummary)
	return summaries, args.Error(1)
}

func (m *MockInstrumentUsecase) GetInstrument(ctx context.Context, instrumentID string) (*screening.Instrument, error) {
	args := m.Called(ctx, instrumentID)
	instrument, _ := args.Get(0).(*screening.Instrument)
	return instrument, args.Error(1)
}

func (m *MockInstrumentUsecase) SelectInstrument(ctx context.Context, ageMonths int) (*responses.SelectedInstrument, error) {
	args := m.Called(ctx, ageMonths)
	selected, _ := args.Get(0).(*responses.SelectedInstrument)
	return selected, args.Error(1)
}

func (m *MockInstrumentUsecase) ScoreAnswers(ctx context.Context, instrumentID string, request *requests.ScoreAnswers) (*responses.ScoredAnswers, error) {
	args := m.Called(ctx, instrumentID, request)
	scored, _ := args.Get(0).(*responses.ScoredAnswers)
	return scored, args.Error(1)
}
