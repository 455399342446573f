package migrations

import (
	"context"

	"SecureEHealth/models"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddActiveSlotIndex allows one REQUESTED or ACCEPTED appointment per doctor and slot.
// $in inside a partial filter needs MongoDB 6.0 or newer.
func AddActiveSlotIndex(ctx context.Context, database *mongo.Database) (int64, error) {
	_, err := database.Collection(util.AppointmentCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "slot", Value: 1}},
		Options: options.Index().
			SetName("doctor_slot_active_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": bson.M{"$in": models.ActiveAppointmentStatuses}}),
	})
	return 0, err
}
