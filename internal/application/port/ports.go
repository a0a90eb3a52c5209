// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// services like logging or the kitchen backend.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces.
//   - This enables loose coupling and easy testing/swapping of implementations.
package port

import "context"

// Logger defines the interface for structured logging.
// Implementation may use zap, logrus, or the standard library.
//
// Example usage:
//
//	log.Info("cube measured", "side_length", side, "volume", vol)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With returns a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext returns a logger with request-scoped fields (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// Menu describes what the kitchen can currently serve.
type Menu struct {
	// Special is the dish the chef has chosen for the day.
	Special string

	// Dishes is the list of available dish names.
	Dishes []string
}

// MenuService defines the interface to the kitchen backend. The geometry core
// never touches it; only the HTTP surface (and its tests, via mocks) consumes
// it.
type MenuService interface {
	// CheckMenu returns the current menu.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//
	// Returns:
	//   - Menu: the chef's special and the available dishes
	//   - error: any error from the backend
	CheckMenu(ctx context.Context) (Menu, error)
}
