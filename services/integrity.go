package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"SecureEHealth/models"
)

const hashTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// canonicalPrescription fixes the field order and encoding that the digest is taken over.
// Changing it invalidates every stored hash.
type canonicalPrescription struct {
	PatientID     string            `json:"patientId"`
	DoctorID      string            `json:"doctorId"`
	HospitalID    string            `json:"hospitalId"`
	AppointmentID string            `json:"appointmentId"`
	Diagnosis     string            `json:"diagnosis"`
	Medicines     []models.Medicine `json:"medicines"`
	Notes         string            `json:"notes"`
	CreatedAt     string            `json:"createdAt"`
}

// PrescriptionHash is the hex SHA-256 of the prescription's content fields and createdAt.
// The stored hash and the id are not part of the input.
func PrescriptionHash(p *models.Prescription) (string, error) {
	medicines := p.Medicines
	if medicines == nil {
		medicines = []models.Medicine{}
	}
	payload, err := json.Marshal(canonicalPrescription{
		PatientID:     p.PatientID.Hex(),
		DoctorID:      p.DoctorID.Hex(),
		HospitalID:    p.HospitalID,
		AppointmentID: p.AppointmentID.Hex(),
		Diagnosis:     p.Diagnosis,
		Medicines:     medicines,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.In(IST).Format(hashTimeLayout),
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
