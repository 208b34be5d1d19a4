package config

import (
	"time"

	"github.com/spf13/viper"

	"sentiment-model-cli/internal/domain"
)

type Config struct {
	Project   ProjectConfig
	API       APIConfig
	Operation OperationConfig
	Logger    LoggerConfig
	Emulator  EmulatorConfig
}

type ProjectConfig struct {
	ID     string
	Region string
}

type APIConfig struct {
	Endpoint    string
	AccessToken string
	Timeout     time.Duration
}

type OperationConfig struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type EmulatorConfig struct {
	Host           string
	Port           int
	OperationDelay time.Duration
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("AUTOML_ENDPOINT", "https://automl.googleapis.com")
	v.SetDefault("AUTOML_ACCESS_TOKEN", "")
	v.SetDefault("AUTOML_TIMEOUT", "30s")
	v.SetDefault("OPERATION_POLL_INTERVAL", "2s")
	v.SetDefault("OPERATION_POLL_TIMEOUT", "20m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")
	v.SetDefault("EMULATOR_HOST", "127.0.0.1")
	v.SetDefault("EMULATOR_PORT", 8287)
	v.SetDefault("EMULATOR_OPERATION_DELAY", "3s")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Project: ProjectConfig{
			ID:     v.GetString("PROJECT_ID"),
			Region: v.GetString("REGION_NAME"),
		},
		API: APIConfig{
			Endpoint:    v.GetString("AUTOML_ENDPOINT"),
			AccessToken: v.GetString("AUTOML_ACCESS_TOKEN"),
			Timeout:     duration(v, "AUTOML_TIMEOUT", 30*time.Second),
		},
		Operation: OperationConfig{
			PollInterval: duration(v, "OPERATION_POLL_INTERVAL", 2*time.Second),
			PollTimeout:  duration(v, "OPERATION_POLL_TIMEOUT", 20*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Emulator: EmulatorConfig{
			Host:           v.GetString("EMULATOR_HOST"),
			Port:           v.GetInt("EMULATOR_PORT"),
			OperationDelay: duration(v, "EMULATOR_OPERATION_DELAY", 3*time.Second),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

// Validate checks the settings every remote call depends on. The emulator
// subcommand runs without them.
func (c *Config) Validate() error {
	if c.Project.ID == "" {
		return domain.ErrMissingProjectID
	}
	if c.Project.Region == "" {
		return domain.ErrMissingRegion
	}
	return nil
}
