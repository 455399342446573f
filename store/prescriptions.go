package store

import (
	"context"

	"SecureEHealth/config/db"
	"SecureEHealth/models"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) prescriptions() *mongo.Collection {
	return db.OpenCollections(m.db, util.PrescriptionCollection)
}

func (m *Mongo) InsertPrescription(ctx context.Context, prescription *models.Prescription) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, m.prescriptions(), prescription)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	prescription.ID = id
	return id, nil
}

func (m *Mongo) FindPrescription(ctx context.Context, id primitive.ObjectID) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := db.FindOne(ctx, m.prescriptions(), bson.M{"_id": id}, &prescription); err != nil {
		return nil, translate(err)
	}
	return &prescription, nil
}

func (m *Mongo) ListPrescriptionsByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return m.listPrescriptions(ctx, bson.M{"patientId": patientID})
}

func (m *Mongo) ListPrescriptionsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return m.listPrescriptions(ctx, bson.M{"doctorId": doctorID})
}

func (m *Mongo) listPrescriptions(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	prescriptions := []models.Prescription{}
	if err := db.FindAll(ctx, m.prescriptions(), filter, &prescriptions, opts); err != nil {
		return nil, translate(err)
	}
	return prescriptions, nil
}
