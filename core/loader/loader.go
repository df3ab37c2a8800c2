package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a self-contained application feature that registers its own
// routes.
type Feature interface {
	// Name returns the feature name for logs and error messages.
	Name() string
	// Register mounts the feature's routes on the router.
	Register(router fiber.Router) error
}

// Manager collects features and loads them onto the Fiber app in
// registration order.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to be loaded.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll registers every feature's routes. Loading stops at the first
// failure so the server never starts half-wired.
func (m *Manager) LoadAll(app *fiber.App) error {
	for _, f := range m.features {
		if err := f.Register(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
