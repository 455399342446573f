package store

import (
	"context"

	"SecureEHealth/config/db"
	"SecureEHealth/models"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) hospitals() *mongo.Collection {
	return db.OpenCollections(m.db, util.HospitalCollection)
}

func (m *Mongo) FindHospital(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := db.FindOne(ctx, m.hospitals(), bson.M{"hospitalId": hospitalID}, &hospital); err != nil {
		return nil, translate(err)
	}
	return &hospital, nil
}

func (m *Mongo) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	opts := options.Find().SetSort(bson.D{{Key: "hospitalId", Value: 1}})
	hospitals := []models.Hospital{}
	if err := db.FindAll(ctx, m.hospitals(), bson.M{}, &hospitals, opts); err != nil {
		return nil, translate(err)
	}
	return hospitals, nil
}

func (m *Mongo) CountHospitals(ctx context.Context) (int64, error) {
	n, err := db.Count(ctx, m.hospitals(), bson.M{})
	return n, translate(err)
}

// UpsertHospital inserts h only when its hospitalId is not present yet.
func (m *Mongo) UpsertHospital(ctx context.Context, h models.Hospital) (bool, error) {
	opts := options.Update().SetUpsert(true)
	res, err := m.hospitals().UpdateOne(ctx,
		bson.M{"hospitalId": h.HospitalID},
		bson.M{"$setOnInsert": bson.M{
			"hospitalId":   h.HospitalID,
			"hospitalName": h.HospitalName,
			"city":         h.City,
			"state":        h.State,
			"location":     h.Location,
		}},
		opts,
	)
	if err != nil {
		return false, translate(err)
	}
	return res.UpsertedCount > 0, nil
}
