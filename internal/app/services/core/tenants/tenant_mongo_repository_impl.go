package tenants

import (
	"context"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TenantMongoRepository struct {
	Collection *mongo.Collection
}

func NewTenantMongoRepository(db *mongo.Client, dbName string) contracts.TenantRepository {
	return &TenantMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTenants),
	}
}

func (repo *TenantMongoRepository) CreateTenant(ctx context.Context, tenant *models.Tenant) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, tenant)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TenantMongoRepository) FindByID(ctx context.Context, tenantID string) (*models.Tenant, error) {
	objectID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var tenant models.Tenant
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tenant, nil
}

func (repo *TenantMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := repo.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tenant, nil
}

func (repo *TenantMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Tenant, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var tenants []models.Tenant
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tenants, int(total), nil
}

func (repo *TenantMongoRepository) UpdateTenant(ctx context.Context, tenant *models.Tenant) error {
	objectID, err := primitive.ObjectIDFromHex(tenant.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"clinicName": tenant.ClinicName,
		"email":      tenant.Email,
		"updatedAt":  tenant.UpdatedAt,
	}}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *TenantMongoRepository) DeleteByID(ctx context.Context, tenantID string) error {
	objectID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *TenantMongoRepository) UpdateSubscriptionStatus(ctx context.Context, tenantID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"subscriptionStatus": status,
		"updatedAt":          time.Now().UTC(),
	}}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
