package main

import (
	"context"
	"log"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/drivers/database"
	"dentora-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index migration: idempotent, safe to run on every deploy.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoClient := database.NewMongoDB(driverConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ensureIndexes(ctx, db.Collection(constvars.MongoCollectionTenants), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	ensureIndexes(ctx, db.Collection(constvars.MongoCollectionUsers), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "active", Value: 1}},
		},
	})

	ensureIndexes(ctx, db.Collection(constvars.MongoCollectionDentists), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}},
		},
	})

	ensureIndexes(ctx, db.Collection(constvars.MongoCollectionPatients), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "dentistId", Value: 1}},
		},
	})

	ensureIndexes(ctx, db.Collection(constvars.MongoCollectionAppointments), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "startsAt", Value: -1}},
		},
	})

	log.Println("All indexes are in place")
}

func ensureIndexes(ctx context.Context, collection *mongo.Collection, models []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		log.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	log.Printf("Ensured indexes on %s: %v", collection.Name(), names)
}
