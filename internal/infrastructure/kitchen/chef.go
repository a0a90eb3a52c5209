// Package kitchen provides the stand-in adapter for the kitchen backend.
// There is no real kitchen: Chef answers with fixed values, which is exactly
// what makes it useful as a collaborator in integration-style tests.
package kitchen

import (
	"context"

	"github.com/hapkiduki/geometry-go/internal/application/port"
)

// Chef implements port.MenuService with a fixed menu.
type Chef struct{}

// NewChef creates a new Chef adapter.
//
// Returns:
//   - *Chef: the adapter instance
func NewChef() *Chef {
	return &Chef{}
}

// CheckMenu implements port.MenuService. It always succeeds and always
// returns the same menu.
func (c *Chef) CheckMenu(_ context.Context) (port.Menu, error) {
	return port.Menu{
		Special: "margherita pizza",
		Dishes: []string{
			"margherita pizza",
			"pasta carbonara",
			"caesar salad",
			"tomato soup",
		},
	}, nil
}
