package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"SecureEHealth/models"
	"SecureEHealth/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCache is an in-memory JSON cache that records traffic.
type countingCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	sets    int
	broken  bool
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[string][]byte{}}
}

func (c *countingCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		return false, errors.New("cache down")
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *countingCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.broken {
		return errors.New("cache down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.entries[key] = raw
	return nil
}

func (c *countingCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func TestGetHospitalReadsThroughCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.GetHospital(ctx, "H1")
	require.NoError(t, err)
	delete(f.mem.hospitals, "H1")

	second, err := f.svc.GetHospital(ctx, "H1")
	require.NoError(t, err)
	assert.Equal(t, first.HospitalName, second.HospitalName)
	assert.Equal(t, 1, f.cache.hits)

	_, err = f.svc.GetHospital(ctx, "H9")
	assertKind(t, err, util.NotFound)
}

func TestGetHospitalSurvivesCacheOutage(t *testing.T) {
	f := newFixture(t)
	f.cache.broken = true

	hospital, err := f.svc.GetHospital(context.Background(), "H2")
	require.NoError(t, err)
	assert.Equal(t, "Lake View", hospital.HospitalName)
	assert.NotEmpty(t, f.logs.AllEntries())
}

func TestSeedAndWarmHospitals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.svc.ListHospitals(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	inserted, err := f.svc.SeedHospitals(ctx, []models.Hospital{
		{HospitalID: "H1", HospitalName: "Renamed"},
		{HospitalID: "H3", HospitalName: "Hill Top", City: "Shimla", State: "HP"},
		{HospitalName: "No id"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, "City Care", f.mem.hospitals["H1"].HospitalName)

	list, err = f.svc.ListHospitals(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	warmed, err := f.svc.WarmHospitalCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, warmed)
	_, ok := f.cache.entries[util.HospitalKey+"H3"]
	assert.True(t, ok)
}
