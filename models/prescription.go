package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription.Hash is written once at creation and never recomputed in place.
type Prescription struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID     primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID      primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	HospitalID    string             `json:"hospitalId" bson:"hospitalId"`
	AppointmentID primitive.ObjectID `json:"appointmentId" bson:"appointmentId"`
	Diagnosis     string             `json:"diagnosis" bson:"diagnosis"`
	Medicines     []Medicine         `json:"medicines" bson:"medicines"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	Hash          string             `json:"hash" bson:"hash"`
}

type PrescriptionCreate struct {
	PatientID     string     `json:"patientId" binding:"required,objectid"`
	AppointmentID string     `json:"appointmentId" binding:"required,objectid"`
	Diagnosis     string     `json:"diagnosis" binding:"required"`
	Medicines     []Medicine `json:"medicines" binding:"dive"`
	Notes         string     `json:"notes"`
}

type PrescriptionCreated struct {
	Message string `json:"message"`
	ID      string `json:"prescriptionId"`
	Hash    string `json:"hash"`
}

type PrescriptionVerification struct {
	PrescriptionID string `json:"prescriptionId"`
	StoredHash     string `json:"storedHash"`
	ComputedHash   string `json:"computedHash"`
	Valid          bool   `json:"valid"`
}
