package services

import (
	"testing"
	"time"

	"SecureEHealth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func samplePrescription() *models.Prescription {
	patient, _ := primitive.ObjectIDFromHex("65f000000000000000000001")
	doctor, _ := primitive.ObjectIDFromHex("65f000000000000000000002")
	appointment, _ := primitive.ObjectIDFromHex("65f000000000000000000003")
	return &models.Prescription{
		PatientID:     patient,
		DoctorID:      doctor,
		HospitalID:    "H1",
		AppointmentID: appointment,
		Diagnosis:     "Migraine",
		Medicines: []models.Medicine{
			{Name: "Sumatriptan", Dosage: "50mg", Frequency: "PRN", Duration: "10d"},
			{Name: "Paracetamol", Dosage: "500mg", Frequency: "TID", Duration: "5d"},
		},
		Notes:     "Avoid screens",
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 123000000, time.UTC),
	}
}

func TestPrescriptionHashIsDeterministic(t *testing.T) {
	a, err := PrescriptionHash(samplePrescription())
	require.NoError(t, err)
	b, err := PrescriptionHash(samplePrescription())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestPrescriptionHashIgnoresStoredFields(t *testing.T) {
	base, _ := PrescriptionHash(samplePrescription())

	p := samplePrescription()
	p.ID = primitive.NewObjectID()
	p.Hash = "anything"
	p.CreatedAt = p.CreatedAt.In(IST)
	got, err := PrescriptionHash(p)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestPrescriptionHashCoversContent(t *testing.T) {
	base, _ := PrescriptionHash(samplePrescription())

	mutations := map[string]func(p *models.Prescription){
		"createdAt":      func(p *models.Prescription) { p.CreatedAt = p.CreatedAt.Add(time.Millisecond) },
		"diagnosis":      func(p *models.Prescription) { p.Diagnosis = "Tension headache" },
		"notes":          func(p *models.Prescription) { p.Notes = "" },
		"hospital":       func(p *models.Prescription) { p.HospitalID = "H2" },
		"patient":        func(p *models.Prescription) { p.PatientID = primitive.NewObjectID() },
		"medicine order": func(p *models.Prescription) { p.Medicines[0], p.Medicines[1] = p.Medicines[1], p.Medicines[0] },
		"dosage":         func(p *models.Prescription) { p.Medicines[1].Dosage = "650mg" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := samplePrescription()
			mutate(p)
			got, err := PrescriptionHash(p)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestPrescriptionHashNilMedicinesEqualsEmpty(t *testing.T) {
	p := samplePrescription()
	p.Medicines = nil
	a, _ := PrescriptionHash(p)
	p.Medicines = []models.Medicine{}
	b, _ := PrescriptionHash(p)
	assert.Equal(t, a, b)
}
