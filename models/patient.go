package models

import (
	"time"

	"SecureEHealth/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRegister struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type HospitalAdminRegister struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required"`
	HospitalID string `json:"hospitalId" binding:"required"`
}

// SystemAdminRegister is only reachable from the CLI.
type SystemAdminRegister struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// PatientAppointment is the patient dashboard row.
type PatientAppointment struct {
	ID             primitive.ObjectID `json:"_id"`
	PatientID      primitive.ObjectID `json:"patientId"`
	DoctorID       primitive.ObjectID `json:"doctorId"`
	HospitalID     string             `json:"hospitalId"`
	Slot           time.Time          `json:"slot"`
	Status         AppointmentStatus  `json:"status"`
	DoctorName     string             `json:"doctorName"`
	Specialization string             `json:"specialization"`
	HospitalName   string             `json:"hospitalName"`
	HospitalCity   string             `json:"hospitalCity"`
	HospitalCoords []float64          `json:"hospitalCoords"`
}

// SystemOverview is returned to the system admin.
type SystemOverview struct {
	AccountsByRole map[role.Role]int64 `json:"accountsByRole"`
	PendingDoctors int64               `json:"pendingDoctors"`
	Hospitals      int64               `json:"hospitals"`
}
