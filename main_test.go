package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SecureEHealth/config"
	"SecureEHealth/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8000",
		Env:               "test",
		MongoURI:          "mongodb://localhost:27017",
		MongoDB:           "ehealth_test",
		JWTSecret:         "main-secret",
		TokenTTL:          480 * time.Minute,
		HospitalCacheTTL:  time.Hour,
		CORSOrigins:       []string{"*"},
		RateLimitRPS:      5,
		RateLimitBurst:    10,
		Argon2MemoryKB:    1024,
		Argon2Iterations:  1,
		Argon2Parallelism: 1,
		JobsEnabled:       true,
		MigrationsEnabled: true,
	}
}

func TestRun_FullCoverage(t *testing.T) {
	isTest = true
	origStart, origLoad := startServer, loadConfig
	defer func() { isTest, startServer, loadConfig = false, origStart, origLoad }()

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }

	var capturedOpts server.Options
	startServer = func(opts server.Options) error {
		capturedOpts = opts
		return nil
	}

	require.NoError(t, run())
	assert.True(t, capturedOpts.MongoEnabled)
	assert.True(t, capturedOpts.WebServerEnabled)
	assert.Equal(t, "8000", capturedOpts.WebServerPort)
	assert.False(t, capturedOpts.JobsEnabled)
	assert.False(t, capturedOpts.MigrationEnabled)

	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	deps, err := server.Bootstrap(ctx, testConfig(), logger, false, false)
	require.NoError(t, err)

	assert.NoError(t, capturedOpts.JobsHandler(ctx, deps))
	assert.NoError(t, capturedOpts.MigrationHandler(ctx, deps))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	capturedOpts.WebServerPreHandler(r, deps)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed-hospitals", "create-system-admin"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCreateSystemAdminRequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create-system-admin", "--email", "root@example.test"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")
}

func TestContainsWildcard(t *testing.T) {
	assert.True(t, containsWildcard([]string{"https://a.test", "*"}))
	assert.False(t, containsWildcard([]string{"https://a.test"}))
}
