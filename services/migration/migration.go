package migration

import (
	"context"
	"errors"

	"graphsense-dashboard/services/usertags"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const CollectionName = "migrations"

type Migration struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	IsApplied bool               `json:"is_applied" bson:"is_applied"`
}

type migrationFunc func(ctx context.Context, db *mongo.Database) error

type step struct {
	name string
	run  migrationFunc
}

var steps = []step{
	{name: "user_tags_currency_address_index", run: userTagsIndexMigration},
}

// RunMigrations applies every step not yet recorded in the migrations collection.
func RunMigrations(ctx context.Context, db *mongo.Client, dbName string, logger *zap.SugaredLogger) error {
	if db == nil {
		return errors.New("[migration] invalid user database")
	}
	if dbName == "" {
		return errors.New("[migration] invalid database name")
	}
	if logger == nil {
		return errors.New("[migration] invalid logger")
	}

	database := db.Database(dbName)
	migrationsCollection := database.Collection(CollectionName)

	for _, s := range steps {
		var applied Migration
		err := migrationsCollection.FindOne(ctx, bson.M{"name": s.name}).Decode(&applied)
		if err == nil {
			logger.Infow("migration already applied", "name", s.name)
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}

		logger.Infow("starting migration", "name", s.name)
		if err := s.run(ctx, database); err != nil {
			return err
		}

		if _, err := migrationsCollection.InsertOne(ctx, &Migration{
			ID:        primitive.NewObjectID(),
			Name:      s.name,
			IsApplied: true,
		}); err != nil {
			return err
		}
		logger.Infow("migration completed", "name", s.name)
	}

	return nil
}

func userTagsIndexMigration(ctx context.Context, db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "currency", Value: 1},
			{Key: "address", Value: 1},
		},
	}
	_, err := db.Collection(usertags.CollectionName).Indexes().CreateOne(ctx, indexModel)
	return err
}
