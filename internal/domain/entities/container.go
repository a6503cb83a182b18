package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Fallback settings; controllers replace them when a config file is found.
	return container.Provide(DefaultSettings)
}
