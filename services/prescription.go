package services

import (
	"context"
	"time"

	"SecureEHealth/auth"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"
)

/*
* Doctor must still be APPROVED
* The appointment must be ACCEPTED, owned by this doctor and for this patient
* createdAt is fixed before hashing so the stored record reproduces the digest
 */
func (s *Service) CreatePrescription(ctx context.Context, claims *auth.Claims, req models.PrescriptionCreate) (*models.Prescription, error) {
	doctor, err := s.requireApprovedDoctor(ctx, claims)
	if err != nil {
		return nil, err
	}
	patientID, err := parseID(req.PatientID, util.INVALID_ID_FORMAT)
	if err != nil {
		return nil, err
	}
	appointmentID, err := parseID(req.AppointmentID, util.INVALID_ID_FORMAT)
	if err != nil {
		return nil, err
	}

	appointment, err := s.store.FindAcceptedAppointment(ctx, appointmentID, doctor.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.Forbidden, util.INVALID_APPOINTMENT)
		}
		return nil, s.storeFailure("findAcceptedAppointment", err)
	}
	if appointment.PatientID != patientID {
		return nil, util.E(util.Forbidden, util.INVALID_APPOINTMENT)
	}

	medicines := req.Medicines
	if medicines == nil {
		medicines = []models.Medicine{}
	}
	prescription := &models.Prescription{
		PatientID:     patientID,
		DoctorID:      doctor.ID,
		HospitalID:    appointment.HospitalID,
		AppointmentID: appointmentID,
		Diagnosis:     req.Diagnosis,
		Medicines:     medicines,
		Notes:         req.Notes,
		CreatedAt:     s.now().UTC().Truncate(time.Millisecond),
	}
	hash, err := PrescriptionHash(prescription)
	if err != nil {
		return nil, util.Wrap(util.IntegrityFailure, util.PRESCRIPTION_CREATE_FAILED, err)
	}
	prescription.Hash = hash

	if _, err := s.store.InsertPrescription(ctx, prescription); err != nil {
		return nil, s.storeFailure("insertPrescription", err)
	}
	s.log.WithField("prescriptionId", prescription.ID.Hex()).Info("prescription created")
	return prescription, nil
}

func (s *Service) PatientPrescriptions(ctx context.Context, claims *auth.Claims) ([]models.Prescription, error) {
	if _, err := auth.RequireRole(claims, role.Patient); err != nil {
		return nil, err
	}
	id, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.store.ListPrescriptionsByPatient(ctx, id)
	if err != nil {
		return nil, s.storeFailure("listPrescriptionsByPatient", err)
	}
	return prescriptions, nil
}

func (s *Service) DoctorPrescriptions(ctx context.Context, claims *auth.Claims) ([]models.Prescription, error) {
	if _, err := auth.RequireRole(claims, role.Doctor); err != nil {
		return nil, err
	}
	id, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.store.ListPrescriptionsByDoctor(ctx, id)
	if err != nil {
		return nil, s.storeFailure("listPrescriptionsByDoctor", err)
	}
	return prescriptions, nil
}

/*
* Only the prescription's patient or doctor may verify it
* Anyone else gets NotFound
* Recompute over the stored fields and compare with the stored hash
 */
func (s *Service) VerifyPrescription(ctx context.Context, claims *auth.Claims, prescriptionID string) (*models.PrescriptionVerification, error) {
	if _, err := auth.RequireRole(claims, role.Patient, role.Doctor); err != nil {
		return nil, err
	}
	caller, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	id, err := parseID(prescriptionID, util.INVALID_ID_FORMAT)
	if err != nil {
		return nil, err
	}
	prescription, err := s.store.FindPrescription(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.NotFound, util.PRESCRIPTION_NOT_FOUND)
		}
		return nil, s.storeFailure("findPrescription", err)
	}
	owner := prescription.PatientID
	if claims.Role == role.Doctor {
		owner = prescription.DoctorID
	}
	if owner != caller {
		return nil, util.E(util.NotFound, util.PRESCRIPTION_NOT_FOUND)
	}

	computed, err := PrescriptionHash(prescription)
	if err != nil {
		return nil, util.Wrap(util.IntegrityFailure, util.INTERNAL_ERROR, err)
	}
	valid := computed == prescription.Hash
	if !valid {
		s.log.WithField("prescriptionId", prescriptionID).Warn("prescription hash mismatch")
	}
	return &models.PrescriptionVerification{
		PrescriptionID: prescriptionID,
		StoredHash:     prescription.Hash,
		ComputedHash:   computed,
		Valid:          valid,
	}, nil
}
