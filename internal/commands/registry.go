// Package commands provides command registration and execution functionality
// for tabshell. It manages the fixed table of shell commands and handles
// command lookup by name.
package commands

import (
	"fmt"
	"sort"
	"sync"

	"tabshell/internal/dataset"
	"tabshell/internal/session"
)

// Result is what a command hands back to the dispatcher: a human-readable
// message and, optionally, a dataset that replaces the session's current one.
type Result struct {
	Message string
	Dataset *dataset.Dataset
}

// Command defines the interface every tabshell command implements. Commands
// enforce their own preconditions (dataset present, remote handles present,
// argument count) and surface precondition failures as Result messages, not
// errors; returned errors are reserved for unexpected failures.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(args []string, sess *session.Session) (*Result, error)
}

// Precondition messages shared by the handlers.
const (
	MsgNoData           = "No data loaded. Upload a CSV file first."
	MsgNotAuthenticated = "Not authenticated. Configure credentials and restart."
)

// Registry manages command registration and lookup for tabshell commands.
// It provides thread-safe registration and retrieval of commands by name.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty or if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	return nil
}

// Get retrieves a command by name. Returns the command and true if found,
// or nil and false if the command is not registered.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns all registered commands sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// GlobalRegistry is the global command registry instance used throughout
// tabshell. Commands register themselves with this instance during
// initialization.
var GlobalRegistry = NewRegistry()

// GetGlobalRegistry returns the global command registry instance.
func GetGlobalRegistry() *Registry {
	return GlobalRegistry
}
