package services

import (
	"context"

	"SecureEHealth/auth"
	"SecureEHealth/models"
	"SecureEHealth/role"
)

func (s *Service) SystemOverview(ctx context.Context, claims *auth.Claims) (*models.SystemOverview, error) {
	if _, err := auth.RequireRole(claims, role.SystemAdmin); err != nil {
		return nil, err
	}
	return s.overview(ctx)
}

func (s *Service) overview(ctx context.Context) (*models.SystemOverview, error) {
	counts := make(map[role.Role]int64, len(role.All))
	for _, r := range role.All {
		n, err := s.store.CountAccounts(ctx, r)
		if err != nil {
			return nil, s.storeFailure("countAccounts", err)
		}
		counts[r] = n
	}
	pending, err := s.store.CountDoctors(ctx, "", role.Pending)
	if err != nil {
		return nil, s.storeFailure("countDoctors", err)
	}
	hospitals, err := s.store.CountHospitals(ctx)
	if err != nil {
		return nil, s.storeFailure("countHospitals", err)
	}
	return &models.SystemOverview{
		AccountsByRole: counts,
		PendingDoctors: pending,
		Hospitals:      hospitals,
	}, nil
}

// PendingDigest is the per-hospital PENDING doctor count used by the daily job.
func (s *Service) PendingDigest(ctx context.Context) (map[string]int64, error) {
	doctors, err := s.store.ListDoctors(ctx, "", role.Pending)
	if err != nil {
		return nil, s.storeFailure("listDoctors", err)
	}
	digest := map[string]int64{}
	for _, d := range doctors {
		digest[d.HospitalID]++
	}
	return digest, nil
}
