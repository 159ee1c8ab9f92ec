package children

import (
	"context"
	"spectrum-sense-service/internal/app/contracts"
	"spectrum-sense-service/internal/app/models"
	"spectrum-sense-service/internal/pkg/constvars"
	"spectrum-sense-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChildMongoRepository struct {
	Collection *mongo.Collection
}

func NewChildMongoRepository(db *mongo.Client, dbName string) contracts.ChildRepository {
	return &ChildMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChildren),
	}
}

func (repo *ChildMongoRepository) CreateChild(ctx context.Context, childModel *models.Child) (childID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, childModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByGuardianID lists the children of one guardian, oldest profile first.
func (repo *ChildMongoRepository) FindByGuardianID(ctx context.Context, guardianID string) ([]models.Child, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"guardianId": guardianID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	children := make([]models.Child, 0)
	if err := cursor.All(ctx, &children); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return children, nil
}

func (repo *ChildMongoRepository) FindByIDAndGuardianID(ctx context.Context, childID, guardianID string) (*models.Child, error) {
	objectID, err := primitive.ObjectIDFromHex(childID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var child models.Child
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "guardianId": guardianID}).Decode(&child)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &child, nil
}

func (repo *ChildMongoRepository) DeleteByIDAndGuardianID(ctx context.Context, childID, guardianID string) (deleted bool, err error) {
	objectID, err := primitive.ObjectIDFromHex(childID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "guardianId": guardianID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
