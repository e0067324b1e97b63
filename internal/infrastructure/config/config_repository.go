package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
	"github.com/spf13/viper"
)

// ConfigRepository is an implementation of port.ConfigRepository
type ConfigRepository struct{}

// NewConfigRepository creates a new ConfigRepository instance
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// Load loads configuration from file
func (r *ConfigRepository) Load(configPath string) (*model.Config, error) {
	config := model.NewConfig()

	// If configPath is empty, look in the default location
	if configPath == "" {
		var err error
		configPath, err = r.GetDefaultPath()
		if err != nil {
			return nil, err
		}
	}

	// A missing file means defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	// Map from viper to Config struct, keeping defaults for unset keys
	if v.IsSet("agent_binary") {
		config.AgentBinary = v.GetString("agent_binary")
	}
	if v.IsSet("addresses") {
		config.Addresses = v.GetStringSlice("addresses")
	}
	if v.IsSet("control_api_url") {
		config.ControlAPIURL = v.GetString("control_api_url")
	}
	if v.IsSet("poll_attempts") {
		config.PollAttempts = v.GetInt("poll_attempts")
	}
	if v.IsSet("poll_interval") {
		config.PollInterval = v.GetDuration("poll_interval")
	}
	if v.IsSet("probe_timeout") {
		config.ProbeTimeout = v.GetDuration("probe_timeout")
	}
	if v.IsSet("probe_interval") {
		config.ProbeInterval = v.GetDuration("probe_interval")
	}
	if v.IsSet("log_level") {
		config.LogLevel = model.LogLevel(v.GetString("log_level"))
	}
	if v.IsSet("log_file") {
		config.LogFile = v.GetString("log_file")
	}

	return config, nil
}

// Save saves configuration to file
func (r *ConfigRepository) Save(config *model.Config, configPath string) error {
	// If configPath is empty, use default location
	if configPath == "" {
		var err error
		configPath, err = r.GetDefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("agent_binary", config.AgentBinary)
	v.Set("addresses", config.Addresses)
	v.Set("control_api_url", config.ControlAPIURL)
	v.Set("poll_attempts", config.PollAttempts)
	v.Set("poll_interval", config.PollInterval.String())
	v.Set("probe_timeout", config.ProbeTimeout.String())
	v.Set("probe_interval", config.ProbeInterval.String())
	v.Set("log_level", string(config.LogLevel))
	v.Set("log_file", config.LogFile)

	if err := v.WriteConfig(); err != nil {
		// If file doesn't exist, create new one
		if strings.Contains(err.Error(), "no such file") {
			return v.SafeWriteConfig()
		}
		return fmt.Errorf("error saving configuration: %v", err)
	}

	return nil
}

// GetDefaultPath returns the default path for configuration file
func (r *ConfigRepository) GetDefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %v", err)
	}

	return filepath.Join(homeDir, ".devtunnel", "config.yaml"), nil
}

// Ensure ConfigRepository implements port.ConfigRepository
var _ port.ConfigRepository = (*ConfigRepository)(nil)
