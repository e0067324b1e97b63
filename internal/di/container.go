package di

import (
	"os"

	"github.com/devtunnel/devtunnel-go-client/internal/application/service"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/agent"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/config"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/control"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/host"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/logger"
)

// Container is a container for dependency injection
type Container struct {
	// Logger
	Logger *logger.Logger

	// Repositories
	ConfigRepository *config.ConfigRepository

	// Services
	ConfigService *service.ConfigService

	// Agent infrastructure
	Runner       *agent.Runner
	StatusClient *control.StatusClient

	// Config
	Config *model.Config
}

// NewContainer creates a new Container instance
func NewContainer() *Container {
	return &Container{}
}

// Initialize initializes the container
func (c *Container) Initialize(configPath string) error {
	// Initialize logger
	c.Logger = logger.NewLogger(os.Stdout, "info")

	// Initialize config repository
	c.ConfigRepository = config.NewConfigRepository()

	// Initialize config service
	c.ConfigService = service.NewConfigService(c.ConfigRepository, c.Logger)

	// Load configuration
	var err error
	c.Config, err = c.ConfigService.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Set logger level based on configuration
	c.Logger.SetLevel(string(c.Config.LogLevel))

	// If a log file is specified, switch to a file logger
	if c.Config.LogFile != "" {
		fileLogger, err := logger.NewFileLogger(c.Config.LogFile, string(c.Config.LogLevel))
		if err != nil {
			c.Logger.Error("Failed to create file logger: %v", err)
		} else {
			c.Logger.Info("Logs will be written to file: %s", c.Config.LogFile)
			c.Logger = fileLogger
		}
	}

	// Initialize agent infrastructure
	c.Runner = agent.NewRunner(c.Config.AgentBinary, c.Logger)
	c.StatusClient = control.NewStatusClient(c.Config.ControlAPIURL)

	return nil
}

// NewCoordinator builds a coordinator for the given host server addresses,
// fronted by a probe that fires the started signal once the server answers.
func (c *Container) NewCoordinator(addresses []string) (*service.Coordinator, *host.ProbedHost) {
	probedHost := host.NewProbedHost(addresses, c.Config.ProbeInterval, c.Config.ProbeTimeout, c.Logger)
	poller := service.NewPoller(c.StatusClient, service.RetryPolicy{
		Attempts: c.Config.PollAttempts,
		Delay:    c.Config.PollInterval,
	}, c.Logger)
	coordinator := service.NewCoordinator(probedHost, c.Runner, poller, c.Logger)
	return coordinator, probedHost
}

// Close closes all resources
func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
