package assessmentResults

import (
	"context"
	"regexp"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssessmentResultMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentResultMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentResultRepository {
	return &AssessmentResultMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessmentResults),
	}
}

func (repo *AssessmentResultMongoRepository) CreateAssessmentResult(ctx context.Context, resultModel *models.AssessmentResult) (resultID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, resultModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentResultMongoRepository) FindAll(ctx context.Context, filter *models.AssessmentResultFilter) ([]models.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: sortDirection(filter.OldestFirst)}})
	cursor, err := repo.Collection.Find(ctx, buildResultFilter(filter), opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.AssessmentResult, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

func (repo *AssessmentResultMongoRepository) FindByIDAndGuardianID(ctx context.Context, resultID, guardianID string) (*models.AssessmentResult, error) {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var result models.AssessmentResult
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "guardianId": guardianID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &result, nil
}

func buildResultFilter(filter *models.AssessmentResultFilter) bson.M {
	query := bson.M{"guardianId": filter.GuardianID}
	if filter.ChildID != "" {
		query["childId"] = filter.ChildID
	}
	if filter.RiskLevel > 0 {
		query["riskLevel"] = filter.RiskLevel
	}
	if filter.Search != "" {
		query["childName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	return query
}

func sortDirection(oldestFirst bool) int {
	if oldestFirst {
		return 1
	}
	return -1
}
