package assessmentResults

import (
	"spectrum-sense-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildResultFilter(t *testing.T) {
	t.Run("guardian only", func(t *testing.T) {
		query := buildResultFilter(&models.AssessmentResultFilter{GuardianID: "g1"})
		assert.Equal(t, bson.M{"guardianId": "g1"}, query)
	})

	t.Run("every filter", func(t *testing.T) {
		query := buildResultFilter(&models.AssessmentResultFilter{
			GuardianID: "g1",
			ChildID:    "c1",
			RiskLevel:  3,
			Search:     "a.b",
		})
		assert.Equal(t, "c1", query["childId"])
		assert.Equal(t, 3, query["riskLevel"])
		assert.Equal(t, primitive.Regex{Pattern: `a\.b`, Options: "i"}, query["childName"])
	})
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, -1, sortDirection(false))
	assert.Equal(t, 1, sortDirection(true))
}
