package services

import (
	"context"

	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"
)

// ListApprovedDoctors is the public doctor list of a hospital.
func (s *Service) ListApprovedDoctors(ctx context.Context, hospitalID string) ([]models.Account, error) {
	if _, err := s.GetHospital(ctx, hospitalID); err != nil {
		return nil, err
	}
	doctors, err := s.store.ListDoctors(ctx, hospitalID, role.Approved)
	if err != nil {
		return nil, s.storeFailure("listDoctors", err)
	}
	return doctors, nil
}

/*
* Only APPROVED doctors are visible
* Hospital name is best effort
 */
func (s *Service) GetDoctorDetails(ctx context.Context, doctorID string) (*models.DoctorDetails, error) {
	id, err := parseID(doctorID, util.INVALID_DOCTOR_ID_FORMAT)
	if err != nil {
		return nil, err
	}
	doctor, err := s.store.FindAccountByID(ctx, id)
	if err != nil && !isNotFound(err) {
		return nil, s.storeFailure("findAccountByID", err)
	}
	if err != nil || !doctor.IsApprovedDoctor() {
		return nil, util.E(util.NotFound, util.DOCTOR_NOT_FOUND)
	}
	details := &models.DoctorDetails{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
		LicenseNumber:  doctor.LicenseNumber,
		HospitalID:     doctor.HospitalID,
	}
	if hospital, err := s.GetHospital(ctx, doctor.HospitalID); err == nil {
		details.HospitalName = hospital.HospitalName
	}
	return details, nil
}
