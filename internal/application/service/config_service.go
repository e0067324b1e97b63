package service

import (
	"fmt"
	"time"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
)

// ConfigService is a service for managing configuration
type ConfigService struct {
	configRepo port.ConfigRepository
	logger     port.Logger
}

// NewConfigService creates a new ConfigService instance
func NewConfigService(configRepo port.ConfigRepository, logger port.Logger) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		logger:     logger,
	}
}

// LoadConfig loads configuration from a file
func (s *ConfigService) LoadConfig(configPath string) (*model.Config, error) {
	// If configPath is empty, use the default path
	if configPath == "" {
		var err error
		configPath, err = s.configRepo.GetDefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default path: %v", err)
		}
	}

	config, err := s.configRepo.Load(configPath)
	if err != nil {
		s.logger.Warn("Failed to load configuration from %s: %v", configPath, err)
		// Return default configuration if loading fails
		return model.NewConfig(), nil
	}

	s.logger.Info("Configuration loaded from %s", configPath)

	return config, nil
}

// SaveConfig saves configuration to a file
func (s *ConfigService) SaveConfig(config *model.Config, configPath string) error {
	// If configPath is empty, use the default path
	if configPath == "" {
		var err error
		configPath, err = s.configRepo.GetDefaultPath()
		if err != nil {
			return fmt.Errorf("failed to get default path: %v", err)
		}
	}

	if err := s.configRepo.Save(config, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %v", err)
	}

	s.logger.Info("Configuration saved to %s", configPath)

	return nil
}

// SetAgentBinary sets the tunnel agent executable name
func (s *ConfigService) SetAgentBinary(config *model.Config, binary string) {
	config.AgentBinary = binary
}

// SetAddresses sets the host server's bound address set
func (s *ConfigService) SetAddresses(config *model.Config, addresses []string) {
	config.Addresses = addresses
}

// SetControlAPIURL sets the agent's local status endpoint
func (s *ConfigService) SetControlAPIURL(config *model.Config, url string) {
	config.ControlAPIURL = url
}

// SetPollAttempts sets the retry budget for public URL discovery
func (s *ConfigService) SetPollAttempts(config *model.Config, attempts int) {
	config.PollAttempts = attempts
}

// SetPollInterval sets the delay between discovery attempts
func (s *ConfigService) SetPollInterval(config *model.Config, interval time.Duration) {
	config.PollInterval = interval
}

// SetProbeTimeout sets how long to wait for the local server to come up
func (s *ConfigService) SetProbeTimeout(config *model.Config, timeout time.Duration) {
	config.ProbeTimeout = timeout
}

// SetProbeInterval sets the delay between local server probes
func (s *ConfigService) SetProbeInterval(config *model.Config, interval time.Duration) {
	config.ProbeInterval = interval
}

// SetLogLevel sets the log level
func (s *ConfigService) SetLogLevel(config *model.Config, logLevel string) {
	config.LogLevel = model.LogLevel(logLevel)
}

// SetLogFile sets the log file
func (s *ConfigService) SetLogFile(config *model.Config, logFile string) {
	config.LogFile = logFile
}
