package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Zone identifies one saved selection entry. ID is an IANA zone
// identifier; City disambiguates entries sharing a zone (Mumbai and
// Kolkata both live in Asia/Kolkata).
type Zone struct {
	ID   string `yaml:"id"`
	City string `yaml:"city"`
}

// Meeting configures the business-hours window, inclusive local hours.
type Meeting struct {
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

// Config is the persisted application configuration. Only the curated
// zone list and settings are saved; clock state never is.
type Config struct {
	Zones   []Zone  `yaml:"zones"`
	Meeting Meeting `yaml:"meeting"`
	// ViewerZone overrides the zone used as "here" for day labels.
	// Empty means the system zone.
	ViewerZone string `yaml:"viewer_zone,omitempty"`
}

// Load reads the configuration from ~/.config/meridian.yaml, creating a
// default one on first run.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfig(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all zone identifiers resolve and the meeting
// window is a sane hour range.
func (c *Config) Validate() error {
	if len(c.Zones) == 0 {
		return fmt.Errorf("no zones configured")
	}

	for i, z := range c.Zones {
		if z.ID == "" {
			return fmt.Errorf("zone at index %d has no id", i)
		}
		if _, err := time.LoadLocation(z.ID); err != nil {
			return fmt.Errorf("invalid timezone '%s': %w", z.ID, err)
		}
	}

	m := c.Meeting
	if m.StartHour < 0 || m.StartHour > 23 || m.EndHour < 0 || m.EndHour > 23 {
		return fmt.Errorf("meeting hours must be within 0-23, got %d-%d", m.StartHour, m.EndHour)
	}
	if m.StartHour > m.EndHour {
		return fmt.Errorf("meeting start hour %d is after end hour %d", m.StartHour, m.EndHour)
	}

	if c.ViewerZone != "" {
		if _, err := time.LoadLocation(c.ViewerZone); err != nil {
			return fmt.Errorf("invalid viewer zone '%s': %w", c.ViewerZone, err)
		}
	}

	return nil
}

// Save writes the configuration to ~/.config/meridian.yaml atomically.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Atomic write: write to temp file, then rename.
	configDir := filepath.Dir(configPath)
	tempFile, err := os.CreateTemp(configDir, "meridian-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// ViewerLocation resolves the viewer zone, defaulting to the system zone.
func (c *Config) ViewerLocation() (*time.Location, error) {
	if c.ViewerZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ViewerZone)
	if err != nil {
		return nil, fmt.Errorf("invalid viewer zone '%s': %w", c.ViewerZone, err)
	}
	return loc, nil
}

func (c *Config) applyDefaults() {
	if c.Meeting.StartHour == 0 && c.Meeting.EndHour == 0 {
		c.Meeting = Meeting{StartHour: 9, EndHour: 17}
	}
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "meridian.yaml"), nil
}

// createDefaultConfig writes a first-run configuration: the system zone
// first, then a spread of common zones across the Americas, Asia and
// Europe.
func createDefaultConfig(path string) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultConfig := Config{
		Zones: []Zone{
			{ID: getSystemTimezone()},
			{ID: "America/New_York", City: "New York"},
			{ID: "America/Los_Angeles", City: "Los Angeles"},
			{ID: "Asia/Kolkata", City: "Mumbai"},
			{ID: "Europe/London", City: "London"},
		},
		Meeting: Meeting{StartHour: 9, EndHour: 17},
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return nil
}

// getSystemTimezone returns the system's IANA timezone name.
func getSystemTimezone() string {
	loc := time.Local
	if loc != nil {
		return loc.String()
	}
	return "UTC"
}
