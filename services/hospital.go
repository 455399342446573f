package services

import (
	"context"

	"SecureEHealth/models"
	"SecureEHealth/util"
)

/*
* Try the cache first; a cache error only gets logged
* Fall back to the store and refill the cache
 */
func (s *Service) GetHospital(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	key := util.HospitalKey + hospitalID
	var cached models.Hospital
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("hospital cache read failed")
	}
	if hit {
		return &cached, nil
	}

	hospital, err := s.store.FindHospital(ctx, hospitalID)
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.NotFound, util.HOSPITAL_NOT_FOUND)
		}
		return nil, s.storeFailure("findHospital", err)
	}
	if err := s.cache.Set(ctx, key, hospital, s.cacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("hospital cache write failed")
	}
	return hospital, nil
}

func (s *Service) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	var cached []models.Hospital
	hit, err := s.cache.Get(ctx, util.HospitalListKey, &cached)
	if err != nil {
		s.log.WithError(err).Warn("hospital list cache read failed")
	}
	if hit {
		return cached, nil
	}
	hospitals, err := s.store.ListHospitals(ctx)
	if err != nil {
		return nil, s.storeFailure("listHospitals", err)
	}
	if err := s.cache.Set(ctx, util.HospitalListKey, hospitals, s.cacheTTL); err != nil {
		s.log.WithError(err).Warn("hospital list cache write failed")
	}
	return hospitals, nil
}

// WarmHospitalCache drops the cached directory and reloads every entry.
func (s *Service) WarmHospitalCache(ctx context.Context) (int, error) {
	if err := s.cache.Delete(ctx, util.HospitalListKey); err != nil {
		s.log.WithError(err).Warn("hospital list cache delete failed")
	}
	hospitals, err := s.ListHospitals(ctx)
	if err != nil {
		return 0, err
	}
	for i := range hospitals {
		key := util.HospitalKey + hospitals[i].HospitalID
		if err := s.cache.Set(ctx, key, &hospitals[i], s.cacheTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("hospital cache write failed")
		}
	}
	return len(hospitals), nil
}

// SeedHospitals inserts the hospitals not yet present and reports how many were new.
func (s *Service) SeedHospitals(ctx context.Context, hospitals []models.Hospital) (int, error) {
	inserted := 0
	for _, h := range hospitals {
		if h.HospitalID == "" {
			continue
		}
		created, err := s.store.UpsertHospital(ctx, h)
		if err != nil {
			return inserted, s.storeFailure("upsertHospital", err)
		}
		if created {
			inserted++
		}
	}
	if inserted > 0 {
		if err := s.cache.Delete(ctx, util.HospitalListKey); err != nil {
			s.log.WithError(err).Warn("hospital list cache delete failed")
		}
	}
	return inserted, nil
}
