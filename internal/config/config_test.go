package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-model-cli/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://automl.googleapis.com", cfg.API.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Operation.PollInterval)
	assert.Equal(t, 20*time.Minute, cfg.Operation.PollTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 8287, cfg.Emulator.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROJECT_ID", "demo-project")
	t.Setenv("REGION_NAME", "us-central1")
	t.Setenv("AUTOML_ENDPOINT", "http://127.0.0.1:8287")
	t.Setenv("AUTOML_TIMEOUT", "5s")
	t.Setenv("OPERATION_POLL_INTERVAL", "100ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "demo-project", cfg.Project.ID)
	assert.Equal(t, "us-central1", cfg.Project.Region)
	assert.Equal(t, "http://127.0.0.1:8287", cfg.API.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Operation.PollInterval)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("AUTOML_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"missing project", Config{}, domain.ErrMissingProjectID},
		{"missing region", Config{Project: ProjectConfig{ID: "p"}}, domain.ErrMissingRegion},
		{"complete", Config{Project: ProjectConfig{ID: "p", Region: "us-central1"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
