package assessmentResults

import (
	"context"
	"errors"
	"spectrum-sense-service/internal/app/contracts/mocks"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/dto/requests"
	"spectrum-sense-service/internal/pkg/exceptions"
	"spectrum-sense-service/internal/pkg/screening"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	guardianID = "665f1c2e9b1d4a0012345600"
	resultID   = "665f1c2e9b1d4a0012345699"
)

func newTestAssessmentResultUsecase(t *testing.T) (*assessmentResultUsecase, *mocks.MockAssessmentResultRepository) {
	t.Helper()
	catalog, err := screening.DefaultCatalog()
	require.NoError(t, err)
	repo := new(mocks.MockAssessmentResultRepository)
	return &assessmentResultUsecase{AssessmentResultRepository: repo, Catalog: catalog, Log: zap.NewNop()}, repo
}

func categorizedResult() *models.AssessmentResult {
	return &models.AssessmentResult{
		ID:                resultID,
		GuardianID:        guardianID,
		ChildID:           "c1",
		ChildName:         "Ayu",
		InstrumentID:      "asd10",
		InstrumentVersion: "2026.1",
		OverallScore:      2.9167,
		MaxScale:          5,
		RiskLevel:         2,
		RiskLabel:         "Moderate",
		RiskAltLabel:      "Medium",
		CategoryScores: []screening.CategoryScore{
			{CategoryID: "communication", Name: "Communication", Score: 2.33, Percent: 47},
			{CategoryID: "social", Name: "Social Interaction", Score: 4, Percent: 80},
		},
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAssessmentResultUsecase_FindAll(t *testing.T) {
	cases := []struct {
		name    string
		request requests.FindAllAssessmentResults
		want    models.AssessmentResultFilter
	}{
		{
			name:    "defaults",
			request: requests.FindAllAssessmentResults{},
			want:    models.AssessmentResultFilter{GuardianID: guardianID},
		},
		{
			name:    "all risk is no filter",
			request: requests.FindAllAssessmentResults{Risk: constvars.ResultRiskFilterAll},
			want:    models.AssessmentResultFilter{GuardianID: guardianID},
		},
		{
			name: "every option",
			request: requests.FindAllAssessmentResults{
				ChildID: "c1",
				Risk:    constvars.ResultRiskFilterHigh,
				Sort:    constvars.ResultSortOldest,
				Search:  "  ayu ",
			},
			want: models.AssessmentResultFilter{GuardianID: guardianID, ChildID: "c1", RiskLevel: 3, Search: "ayu", OldestFirst: true},
		},
		{
			name:    "medium risk",
			request: requests.FindAllAssessmentResults{Risk: constvars.ResultRiskFilterMedium, Sort: constvars.ResultSortNewest},
			want:    models.AssessmentResultFilter{GuardianID: guardianID, RiskLevel: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := newTestAssessmentResultUsecase(t)
			want := tc.want
			repo.On("FindAll", mock.Anything, &want).Return([]models.AssessmentResult{*categorizedResult()}, nil)

			results, err := uc.FindAll(context.Background(), &models.Session{UserID: guardianID}, &tc.request)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "Ayu", results[0].ChildName)
			repo.AssertExpectations(t)
		})
	}

	t.Run("empty history", func(t *testing.T) {
		uc, repo := newTestAssessmentResultUsecase(t)
		repo.On("FindAll", mock.Anything, mock.Anything).Return([]models.AssessmentResult{}, nil)

		results, err := uc.FindAll(context.Background(), &models.Session{UserID: guardianID}, &requests.FindAllAssessmentResults{})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestAssessmentResultUsecase_FindByID(t *testing.T) {
	t.Run("chart is rebuilt with catalog colours", func(t *testing.T) {
		uc, repo := newTestAssessmentResultUsecase(t)
		repo.On("FindByIDAndGuardianID", mock.Anything, resultID, guardianID).Return(categorizedResult(), nil)

		detail, err := uc.FindByID(context.Background(), &models.Session{UserID: guardianID}, resultID)
		require.NoError(t, err)
		require.Len(t, detail.Chart, 2)
		assert.Equal(t, screening.ColorPink, detail.Chart[0].ColorKey)
		assert.Equal(t, screening.ColorBlue, detail.Chart[1].ColorKey)
		assert.Equal(t, 2, detail.Summary.Level)
		assert.Equal(t, 58, detail.Summary.Percent)
	})

	t.Run("instrument removed from catalog", func(t *testing.T) {
		uc, repo := newTestAssessmentResultUsecase(t)
		result := categorizedResult()
		result.InstrumentID = "retired"
		repo.On("FindByIDAndGuardianID", mock.Anything, resultID, guardianID).Return(result, nil)

		detail, err := uc.FindByID(context.Background(), &models.Session{UserID: guardianID}, resultID)
		require.NoError(t, err)
		assert.Equal(t, screening.CategoryColor("communication", ""), detail.Chart[0].ColorKey)
	})

	t.Run("result of another guardian", func(t *testing.T) {
		uc, repo := newTestAssessmentResultUsecase(t)
		repo.On("FindByIDAndGuardianID", mock.Anything, resultID, "intruder").Return(nil, nil)

		_, err := uc.FindByID(context.Background(), &models.Session{UserID: "intruder"}, resultID)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
