package migrations

import (
	"context"

	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func AddHospitalIDIndex(ctx context.Context, database *mongo.Database) (int64, error) {
	_, err := database.Collection(util.HospitalCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hospitalId", Value: 1}},
		Options: options.Index().SetName("hospitalId_unique").SetUnique(true),
	})
	return 0, err
}
