package tabtypes

// Service defines the interface for tabshell services that provide specific
// functionality. Services are registered and initialized at startup and are
// accessed by commands through the service registry.
type Service interface {
	Name() string
	Initialize() error
}

// ServiceRegistry manages the registration and retrieval of services.
type ServiceRegistry interface {
	GetService(name string) (Service, error)
	RegisterService(service Service) error
}
