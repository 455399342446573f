package jobs

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"SecureEHealth/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

//go:embed hospitals.json
var hospitalSeed []byte

type Services interface {
	SeedHospitals(ctx context.Context, hospitals []models.Hospital) (int, error)
	WarmHospitalCache(ctx context.Context) (int, error)
	PendingDigest(ctx context.Context) (map[string]int64, error)
}

const (
	// every day at 00:05
	DigestSpec = "5 0 * * *"
	// every hour on the hour
	CacheWarmSpec = "0 * * * *"
	jobTimeout    = 2 * time.Minute
)

func SeedHospitalsData() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	if err := json.Unmarshal(hospitalSeed, &hospitals); err != nil {
		return nil, fmt.Errorf("decode hospital seed: %w", err)
	}
	return hospitals, nil
}

/*
* Decode the embedded dataset
* Insert only hospitals that are missing
 */
func SeedHospitals(ctx context.Context, svc Services, log logrus.FieldLogger) error {
	hospitals, err := SeedHospitalsData()
	if err != nil {
		return err
	}
	inserted, err := svc.SeedHospitals(ctx, hospitals)
	if err != nil {
		return err
	}
	log.WithField("inserted", inserted).WithField("total", len(hospitals)).Info("hospital seed applied")
	return nil
}

// RunPendingDigest logs how many doctors wait for approval in each hospital.
func RunPendingDigest(ctx context.Context, svc Services, log logrus.FieldLogger) {
	digest, err := svc.PendingDigest(ctx)
	if err != nil {
		log.WithError(err).Error("pending approval digest failed")
		return
	}
	if len(digest) == 0 {
		log.Info("no doctors pending approval")
		return
	}
	for hospitalID, count := range digest {
		log.WithField("hospitalId", hospitalID).WithField("pending", count).Info("doctors pending approval")
	}
}

func RunCacheWarm(ctx context.Context, svc Services, log logrus.FieldLogger) {
	n, err := svc.WarmHospitalCache(ctx)
	if err != nil {
		log.WithError(err).Error("hospital cache warm failed")
		return
	}
	log.WithField("hospitals", n).Debug("hospital cache warmed")
}

// StartDailyScheduler registers the recurring jobs and starts cron. Stop the returned cron on shutdown.
func StartDailyScheduler(svc Services, log logrus.FieldLogger) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.FixedZone("IST", 5*60*60+30*60)))

	run := func(name string, job func(context.Context, Services, logrus.FieldLogger)) func() {
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			log.WithField("job", name).Info("Running scheduled job")
			job(ctx, svc, log.WithField("job", name))
		}
	}
	if _, err := c.AddFunc(DigestSpec, run("pending-digest", RunPendingDigest)); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(CacheWarmSpec, run("cache-warm", RunCacheWarm)); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
