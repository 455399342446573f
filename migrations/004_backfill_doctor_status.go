package migrations

import (
	"context"

	"SecureEHealth/role"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BackfillDoctorStatus parks doctors created before approvals existed in PENDING.
func BackfillDoctorStatus(ctx context.Context, database *mongo.Database) (int64, error) {
	result, err := database.Collection(util.AccountCollection).UpdateMany(ctx,
		bson.M{"role": role.Doctor, "status": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"status": role.Pending}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
