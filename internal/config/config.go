package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// DemandTemplateConfig holds an area's staffing targets by weekday type
type DemandTemplateConfig struct {
	MonFriDay int `yaml:"monFriDay" validate:"min=0"`
	SatDay    int `yaml:"satDay" validate:"min=0"`
	Night     int `yaml:"night" validate:"min=0"`
}

// DemandOverride sets explicit demand on dates matched by a recurrence rule
type DemandOverride struct {
	RRule string `yaml:"rrule" validate:"required"`
	Day   int    `yaml:"day" validate:"min=0"`
	Night int    `yaml:"night" validate:"min=0"`
}

// DemandCounts is a resolved day/night staffing pair
type DemandCounts struct {
	Day   int
	Night int
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// NightRotation names the SOUTH area's fixed night-shift rotation
	// staff, in rotation order
	NightRotation []string `yaml:"nightRotation,omitempty" validate:"omitempty,len=3"`

	// DemandTemplates overrides the built-in per-area staffing defaults,
	// keyed by area name
	DemandTemplates map[string]DemandTemplateConfig `yaml:"demandTemplates,omitempty"`

	DemandOverrides []DemandOverride `yaml:"demandOverrides,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from surveyor_rota_config.yaml
// It looks for the config file in the current directory first, then in the
// user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the environment-specific config file, e.g.
// surveyor_rota_config.test.yaml for env "test"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.DemandOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in demandOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// DemandOverridesForRange expands every recurrence rule into explicit
// per-date demand counts within [from, to]. Later overrides win on
// overlapping dates.
func (c *Config) DemandOverridesForRange(from, to time.Time) (map[string]DemandCounts, error) {
	out := make(map[string]DemandCounts)

	for i, override := range c.DemandOverrides {
		r, err := rrule.StrToRRule(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in demandOverrides[%d]: %w", i, err)
		}
		r.DTStart(from)

		for _, occurrence := range r.Between(from, to, true) {
			out[occurrence.Format("2006-01-02")] = DemandCounts{
				Day:   override.Day,
				Night: override.Night,
			}
		}
	}

	return out, nil
}

// findConfigFile searches for the config file in current directory and home
// directory
func findConfigFile(env string) (string, error) {
	configFileName := "surveyor_rota_config.yaml"
	if env != "" {
		configFileName = fmt.Sprintf("surveyor_rota_config.%s.yaml", env)
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
