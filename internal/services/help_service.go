package services

import (
	"fmt"
	"sort"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/pkg/tabtypes"
)

// HelpService provides command help information by reading the metadata of
// the registered commands.
type HelpService struct {
	initialized bool
	registry    *commands.Registry
}

// NewHelpService creates a HelpService backed by the global command registry.
func NewHelpService() *HelpService {
	return &HelpService{
		registry: commands.GetGlobalRegistry(),
	}
}

// NewHelpServiceWithRegistry creates a HelpService backed by a specific
// registry. This is primarily for testing.
func NewHelpServiceWithRegistry(registry *commands.Registry) *HelpService {
	return &HelpService{registry: registry}
}

// Name returns the service name "help" for registration.
func (h *HelpService) Name() string {
	return "help"
}

// Initialize marks the help service ready.
func (h *HelpService) Initialize() error {
	logger.ServiceOperation("help", "initialize", "service ready")
	h.initialized = true
	return nil
}

// GetAllCommands returns metadata for every registered command, sorted by name.
func (h *HelpService) GetAllCommands() ([]tabtypes.CommandInfo, error) {
	if !h.initialized {
		return nil, fmt.Errorf("help service not initialized")
	}

	all := h.registry.GetAll()
	infos := make([]tabtypes.CommandInfo, 0, len(all))
	for _, cmd := range all {
		infos = append(infos, tabtypes.CommandInfo{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Usage:       cmd.Usage(),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// GetCommand returns metadata for a specific command by name.
func (h *HelpService) GetCommand(name string) (tabtypes.CommandInfo, error) {
	if !h.initialized {
		return tabtypes.CommandInfo{}, fmt.Errorf("help service not initialized")
	}

	cmd, exists := h.registry.Get(name)
	if !exists {
		return tabtypes.CommandInfo{}, fmt.Errorf("command %s not found", name)
	}
	return tabtypes.CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Usage:       cmd.Usage(),
	}, nil
}

// GetHelpService retrieves the help service from the global registry.
func GetHelpService() (*HelpService, error) {
	service, err := GetGlobalRegistry().GetService("help")
	if err != nil {
		return nil, err
	}

	helpService, ok := service.(*HelpService)
	if !ok {
		return nil, fmt.Errorf("help service has incorrect type")
	}

	return helpService, nil
}
