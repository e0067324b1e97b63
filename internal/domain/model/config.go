package model

import (
	"os"
	"path/filepath"
	"time"
)

// LogLevel defines logging levels
type LogLevel string

const (
	// LogLevelDebug is the level for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the level for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is the level for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is the level for error messages
	LogLevelError LogLevel = "error"
)

// Config is the configuration structure for the devtunnel client
type Config struct {
	// AgentBinary is the name of the tunnel agent executable, resolved via PATH
	AgentBinary string
	// Addresses is the host server's bound address set, used by expose
	// when no addresses are given on the command line
	Addresses []string
	// ControlAPIURL is the agent's local status endpoint
	ControlAPIURL string
	// PollAttempts is the retry budget for public URL discovery
	PollAttempts int
	// PollInterval is the delay between discovery attempts
	PollInterval time.Duration
	// ProbeTimeout bounds how long to wait for the local server to accept connections
	ProbeTimeout time.Duration
	// ProbeInterval is the delay between local server probes
	ProbeInterval time.Duration
	// LogLevel is the logging level (debug, info, warn, error)
	LogLevel LogLevel
	// LogFile is the path to log file (empty for stdout)
	LogFile string
}

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	return &Config{
		AgentBinary:   "tunnel-agent",
		Addresses:     []string{},
		ControlAPIURL: "http://127.0.0.1:4040/api/tunnels",
		PollAttempts:  10,
		PollInterval:  200 * time.Millisecond,
		ProbeTimeout:  30 * time.Second,
		ProbeInterval: 250 * time.Millisecond,
		LogLevel:      LogLevelInfo,
		LogFile:       "",
	}
}

// GetConfigFilePath returns the path to configuration file
func (c *Config) GetConfigFilePath() string {
	// Determine configuration directory based on user
	configDir := "/etc/devtunnel"

	// If not root, use home directory
	if os.Getuid() != 0 {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configDir = filepath.Join(homeDir, ".devtunnel")
		}
	}

	return filepath.Join(configDir, "config.yaml")
}
