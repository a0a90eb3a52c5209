// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods return new values rather than modifying state.
package valueobject

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// AddFunc computes the sum of two scalars. Cube dispatches its addition
// through a function value so callers can substitute an instrumented
// implementation and observe the calls.
type AddFunc func(a, b float64) float64

const (
	// deferredDelay is the fixed wait before DeferredResult produces its value.
	deferredDelay = 1000 * time.Millisecond

	// deferredSeed is the value sampled once the delay elapses; the result
	// delivered to the caller is the seed doubled.
	deferredSeed = 3.0
)

// Cube represents a cube of a given edge length and derives geometric
// quantities from it. The edge length is stored verbatim at construction and
// never mutated; every derived quantity is a pure function of it.
//
// No validation is applied to the length: negative or non-finite values flow
// through the arithmetic with standard float64 semantics (a negative length
// yields a negative surface area and volume). Rejecting such input would be a
// new policy, not preserved behavior, so the type deliberately does not.
//
// Example usage:
//
//	cube := valueobject.NewCube(3)
//	area := cube.SurfaceArea() // 54
//	vol := cube.Volume()       // 27
type Cube struct {
	length float64
	add    AddFunc
	clock  clockwork.Clock
}

// Option configures optional collaborators of a Cube at construction time.
type Option func(*Cube)

// WithAdder replaces the addition function. The zero-configuration default
// is plain a+b; tests substitute a recording implementation to observe that
// Sum delegates to Add.
//
// Parameters:
//   - fn: the addition function to dispatch through
//
// Returns:
//   - Option: the configuration option
func WithAdder(fn AddFunc) Option {
	return func(c *Cube) {
		c.add = fn
	}
}

// WithClock replaces the clock used by DeferredResult. Production code keeps
// the real clock; tests inject clockwork.NewFakeClock and advance it to
// simulate elapsed time without sleeping.
//
// Parameters:
//   - clk: the clock to schedule the deferred computation on
//
// Returns:
//   - Option: the configuration option
func WithClock(clk clockwork.Clock) Option {
	return func(c *Cube) {
		c.clock = clk
	}
}

// NewCube creates a new Cube value object with the given edge length.
//
// Parameters:
//   - length: the edge length, stored verbatim (no validation)
//   - opts: optional overrides for the addition function and clock
//
// Returns:
//   - Cube: the created Cube value object
func NewCube(length float64, opts ...Option) Cube {
	c := Cube{
		length: length,
		add: func(a, b float64) float64 {
			return a + b
		},
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SideLength returns the edge length unchanged.
//
// Returns:
//   - float64: the edge length supplied at construction
func (c Cube) SideLength() float64 {
	return c.length
}

// SurfaceArea returns the total surface area of the cube, 6·L².
//
// Returns:
//   - float64: the surface area
func (c Cube) SurfaceArea() float64 {
	return 6 * c.length * c.length
}

// Volume returns the volume of the cube, L³.
//
// Returns:
//   - float64: the volume
func (c Cube) Volume() float64 {
	return math.Pow(c.length, 3)
}

// Add returns the sum of two scalars. The computation dispatches through the
// configured AddFunc, which keeps the operation separately observable when a
// recording function is injected via WithAdder.
//
// Parameters:
//   - a: first operand
//   - b: second operand
//
// Returns:
//   - float64: a + b
func (c Cube) Add(a, b float64) float64 {
	return c.add(a, b)
}

// Sum delegates to Add and returns its result unchanged. The delegation is
// the point: Add remains a distinct operation rather than being inlined here,
// so a caller can verify that invoking Sum produces exactly one Add call with
// the same arguments.
//
// Parameters:
//   - a: first operand
//   - b: second operand
//
// Returns:
//   - float64: the result of Add(a, b)
func (c Cube) Sum(a, b float64) float64 {
	return c.Add(a, b)
}

// Dimensions projects the cube into a Dimensions value object with all three
// extents equal to the edge length.
//
// Returns:
//   - Dimensions: L × L × L box dimensions
func (c Cube) Dimensions() Dimensions {
	return NewDimensions(c.length, c.length, c.length)
}

// DeferredResult waits the fixed delay and then delivers the doubled seed
// value, 6. It models a slow external computation with a single suspension
// point: the call does not complete before the delay elapses, and it never
// fails on its own — the only early exit is cancellation of the caller's
// context.
//
// Each invocation schedules an independent timer; concurrent calls on the
// same Cube do not interfere because no state is shared between them.
//
// Parameters:
//   - ctx: context for caller-initiated cancellation
//
// Returns:
//   - float64: exactly 6 once the delay has elapsed
//   - error: ctx.Err() if the context is cancelled first
func (c Cube) DeferredResult(ctx context.Context) (float64, error) {
	select {
	case <-c.clock.After(deferredDelay):
		return deferredSeed * 2, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Equals checks whether two cubes have the same edge length. Collaborator
// seams do not participate in equality.
//
// Parameters:
//   - other: the Cube to compare
//
// Returns:
//   - bool: true if both cubes have the same edge length
func (c Cube) Equals(other Cube) bool {
	return c.length == other.length
}

// String returns a formatted representation of the cube.
//
// Returns:
//   - string: formatted string (e.g., "cube(side=3)")
func (c Cube) String() string {
	return fmt.Sprintf("cube(side=%g)", c.length)
}
