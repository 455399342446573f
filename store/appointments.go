package store

import (
	"context"
	"time"

	"SecureEHealth/config/db"
	"SecureEHealth/models"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) appointments() *mongo.Collection {
	return db.OpenCollections(m.db, util.AppointmentCollection)
}

// FindActiveAppointment looks for a REQUESTED or ACCEPTED booking on the exact slot.
func (m *Mongo) FindActiveAppointment(ctx context.Context, doctorID primitive.ObjectID, slot time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"slot":     slot,
		"status":   bson.M{"$in": models.ActiveAppointmentStatuses},
	}
	var appointment models.Appointment
	if err := db.FindOne(ctx, m.appointments(), filter, &appointment); err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (m *Mongo) InsertAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, m.appointments(), appointment)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	appointment.ID = id
	return id, nil
}

// AcceptAppointment flips REQUESTED to ACCEPTED only for the owning doctor.
func (m *Mongo) AcceptAppointment(ctx context.Context, appointmentID, doctorID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":      appointmentID,
		"doctorId": doctorID,
		"status":   bson.M{"$in": models.ActiveAppointmentStatuses},
	}
	res, err := db.UpdateOne(ctx, m.appointments(), filter, bson.M{"$set": bson.M{"status": models.AppointmentAccepted}})
	if err != nil {
		return false, translate(err)
	}
	return res.MatchedCount > 0, nil
}

func (m *Mongo) FindAcceptedAppointment(ctx context.Context, appointmentID, doctorID primitive.ObjectID) (*models.Appointment, error) {
	filter := bson.M{
		"_id":      appointmentID,
		"doctorId": doctorID,
		"status":   models.AppointmentAccepted,
	}
	var appointment models.Appointment
	if err := db.FindOne(ctx, m.appointments(), filter, &appointment); err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (m *Mongo) ListAppointmentsByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return m.listAppointments(ctx, bson.M{"patientId": patientID}, -1)
}

func (m *Mongo) ListAppointmentsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	return m.listAppointments(ctx, bson.M{"doctorId": doctorID}, 1)
}

func (m *Mongo) listAppointments(ctx context.Context, filter bson.M, order int) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slot", Value: order}})
	appointments := []models.Appointment{}
	if err := db.FindAll(ctx, m.appointments(), filter, &appointments, opts); err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}
