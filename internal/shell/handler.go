package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"

	_ "tabshell/internal/commands/builtin" // Import for side effects (init functions)
	"tabshell/internal/logger"
	"tabshell/internal/services"
	"tabshell/internal/session"
)

// ProcessInput handles user input from the interactive shell: it dispatches
// the line against the session and prints the reply.
func ProcessInput(sess *session.Session) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.RawArgs) == 0 {
			return
		}

		rawInput := strings.TrimSpace(strings.Join(c.RawArgs, " "))
		if rawInput == "" {
			return
		}

		result := Dispatch(rawInput, sess)
		c.Println(result.Message)
	}
}

// InitializeServices sets up all required services for the tabshell
// environment. ConfigurationService is registered first because the other
// services depend on it.
func InitializeServices() error {
	registry := services.GetGlobalRegistry()

	if !registry.HasService("configuration") {
		if err := registry.RegisterService(services.NewConfigurationService()); err != nil {
			return err
		}
	}

	if !registry.HasService("auth") {
		if err := registry.RegisterService(services.NewAuthService()); err != nil {
			return err
		}
	}

	if !registry.HasService("help") {
		if err := registry.RegisterService(services.NewHelpService()); err != nil {
			return err
		}
	}

	if err := registry.InitializeAll(); err != nil {
		return err
	}

	logger.Debug("Services initialized")
	return nil
}
