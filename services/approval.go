package services

import (
	"context"

	"SecureEHealth/auth"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"
)

func (s *Service) Approve(ctx context.Context, claims *auth.Claims, doctorID string) error {
	return s.setDoctorStatus(ctx, claims, doctorID, role.Approved)
}

func (s *Service) Reject(ctx context.Context, claims *auth.Claims, doctorID string) error {
	return s.setDoctorStatus(ctx, claims, doctorID, role.Rejected)
}

/*
* Resolve the admin's hospital from the current account
* One conditional update on {_id, role DOCTOR, hospitalId}
* No match means missing or foreign; both answer NotFound
* Re-applying the same status is fine
 */
func (s *Service) setDoctorStatus(ctx context.Context, claims *auth.Claims, doctorID string, status role.ApprovalStatus) error {
	admin, err := s.ResolveAdminHospital(ctx, claims)
	if err != nil {
		return err
	}
	id, err := parseID(doctorID, util.INVALID_DOCTOR_ID_FORMAT)
	if err != nil {
		return err
	}
	matched, err := s.store.SetDoctorStatus(ctx, id, admin.HospitalID, status)
	if err != nil {
		return s.storeFailure("setDoctorStatus", err)
	}
	if !matched {
		return util.E(util.NotFound, util.DOCTOR_NOT_FOUND_OR_FOREIGN)
	}
	s.log.WithField("doctorId", doctorID).
		WithField("hospitalId", admin.HospitalID).
		WithField("status", status).
		Info("doctor status changed")
	return nil
}

func (s *Service) HospitalOverview(ctx context.Context, claims *auth.Claims) (*models.HospitalOverview, error) {
	admin, err := s.ResolveAdminHospital(ctx, claims)
	if err != nil {
		return nil, err
	}
	hospital, err := s.GetHospital(ctx, admin.HospitalID)
	if err != nil {
		return nil, err
	}
	pending, err := s.store.CountDoctors(ctx, admin.HospitalID, role.Pending)
	if err != nil {
		return nil, s.storeFailure("countDoctors", err)
	}
	return &models.HospitalOverview{
		HospitalName:     hospital.HospitalName,
		City:             hospital.City,
		State:            hospital.State,
		Coordinates:      hospital.Coordinates(),
		PendingApprovals: pending,
	}, nil
}

// ListHospitalDoctors returns the admin's PENDING and APPROVED doctors.
func (s *Service) ListHospitalDoctors(ctx context.Context, claims *auth.Claims) ([]models.Account, error) {
	admin, err := s.ResolveAdminHospital(ctx, claims)
	if err != nil {
		return nil, err
	}
	doctors, err := s.store.ListDoctors(ctx, admin.HospitalID, role.Pending, role.Approved)
	if err != nil {
		return nil, s.storeFailure("listDoctors", err)
	}
	return doctors, nil
}
