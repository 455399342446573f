package migrations

import (
	"context"

	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func AddAccountEmailIndex(ctx context.Context, database *mongo.Database) (int64, error) {
	_, err := database.Collection(util.AccountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})
	return 0, err
}
