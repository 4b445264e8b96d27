package dentists

import (
	"context"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DentistMongoRepository struct {
	Collection *mongo.Collection
}

func NewDentistMongoRepository(db *mongo.Client, dbName string) contracts.DentistRepository {
	return &DentistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDentists),
	}
}

func (repo *DentistMongoRepository) CreateDentist(ctx context.Context, dentist *models.Dentist) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, dentist)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *DentistMongoRepository) FindByID(ctx context.Context, tenantID, dentistID string) (*models.Dentist, error) {
	objectID, err := primitive.ObjectIDFromHex(dentistID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var dentist models.Dentist
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "tenantId": tenantID}).Decode(&dentist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &dentist, nil
}

func (repo *DentistMongoRepository) FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Dentist, int, error) {
	filter := bson.M{"tenantId": tenantID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var dentists []models.Dentist
	if err := cursor.All(ctx, &dentists); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return dentists, int(total), nil
}

func (repo *DentistMongoRepository) FindIDsByTenant(ctx context.Context, tenantID string) ([]string, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := repo.Collection.Find(ctx, bson.M{"tenantId": tenantID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID.Hex()
	}
	return ids, nil
}

func (repo *DentistMongoRepository) UpdateDentist(ctx context.Context, dentist *models.Dentist) error {
	objectID, err := primitive.ObjectIDFromHex(dentist.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": dentist.TenantID}
	update := bson.M{"$set": bson.M{
		"fullName":  dentist.FullName,
		"specialty": dentist.Specialty,
		"updatedAt": dentist.UpdatedAt,
	}}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// UpdatePatientCount overwrites the denormalized counter. The write is a
// plain set, so replaying it is harmless.
func (repo *DentistMongoRepository) UpdatePatientCount(ctx context.Context, tenantID, dentistID string, count int64) error {
	objectID, err := primitive.ObjectIDFromHex(dentistID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"patientCount": count}}

	_, err = repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *DentistMongoRepository) DeleteByID(ctx context.Context, tenantID, dentistID string) error {
	objectID, err := primitive.ObjectIDFromHex(dentistID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "tenantId": tenantID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
