package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentRequested AppointmentStatus = "REQUESTED"
	AppointmentAccepted  AppointmentStatus = "ACCEPTED"
)

// ActiveAppointmentStatuses occupy a doctor's slot.
var ActiveAppointmentStatuses = []AppointmentStatus{AppointmentRequested, AppointmentAccepted}

type Appointment struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID  primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID   primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	HospitalID string             `json:"hospitalId" bson:"hospitalId"`
	Slot       time.Time          `json:"slot" bson:"slot"`
	Status     AppointmentStatus  `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type AppointmentRequest struct {
	DoctorID   string    `json:"doctorId" binding:"required,objectid"`
	HospitalID string    `json:"hospitalId" binding:"required"`
	Slot       time.Time `json:"slot" binding:"required"`
}

type AppointmentCreated struct {
	Message string    `json:"message"`
	ID      string    `json:"appointmentId"`
	Slot    time.Time `json:"slot"`
}
