package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorRegister struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required"`
	Password       string   `json:"password" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	LicenseNumber  string   `json:"licenseNumber" binding:"required"`
	HospitalID     string   `json:"hospitalId" binding:"required"`
	Latitude       *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// DoctorDetails is the public doctor card.
type DoctorDetails struct {
	ID             primitive.ObjectID `json:"_id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Specialization string             `json:"specialization"`
	LicenseNumber  string             `json:"licenseNumber"`
	HospitalID     string             `json:"hospitalId"`
	HospitalName   string             `json:"hospitalName"`
}

// DoctorAppointment is the doctor dashboard row.
type DoctorAppointment struct {
	ID           primitive.ObjectID `json:"_id"`
	PatientID    primitive.ObjectID `json:"patientId"`
	DoctorID     primitive.ObjectID `json:"doctorId"`
	HospitalID   string             `json:"hospitalId"`
	Slot         time.Time          `json:"slot"`
	Status       AppointmentStatus  `json:"status"`
	PatientName  string             `json:"patientName"`
	PatientEmail string             `json:"patientEmail"`
}
