package builtin

import (
	"fmt"
	"strings"

	"tabshell/internal/commands"
	"tabshell/internal/parser"
	"tabshell/internal/services"
	"tabshell/internal/session"
)

// HelpCommand implements /help: one line per entry in the fixed command
// table, each starting with the marker character.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show available commands"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "/help"
}

// Execute enumerates the command table. Help is available in any session
// state.
func (c *HelpCommand) Execute(_ []string, _ *session.Session) (*commands.Result, error) {
	helpService, err := services.GetHelpService()
	if err != nil {
		return nil, fmt.Errorf("help service not available: %w", err)
	}

	infos, err := helpService.GetAllCommands()
	if err != nil {
		return nil, fmt.Errorf("failed to get command list: %w", err)
	}

	lines := make([]string, 0, len(infos))
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf("%s%s - %s", parser.Marker, info.Name, info.Description))
	}
	return &commands.Result{Message: strings.Join(lines, "\n")}, nil
}

func init() {
	if err := commands.GetGlobalRegistry().Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}
