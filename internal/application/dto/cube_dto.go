// Package dto contains data transfer objects for the HTTP surface.
package dto

import "net/http"

// CubeResponse carries the derived quantities of a cube.
type CubeResponse struct {
	// SideLength is the edge length the cube was constructed with.
	SideLength float64 `json:"side_length"`

	// SurfaceArea is 6 times the squared edge length.
	SurfaceArea float64 `json:"surface_area"`

	// Volume is the cubed edge length.
	Volume float64 `json:"volume"`

	// Dimensions is the cube rendered as box extents (e.g., "3x3x3").
	Dimensions string `json:"dimensions"`
}

// DeferredResponse carries the result of the deferred computation.
type DeferredResponse struct {
	// Result is the value the computation resolved with.
	Result float64 `json:"result"`

	// ElapsedMS is how long the computation took, in milliseconds.
	ElapsedMS int64 `json:"elapsed_ms"`
}

// SumRequest is the request body for the sum endpoint. Operands are taken
// as-is; missing fields default to zero and no range checks are applied.
type SumRequest struct {
	// A is the first operand.
	A float64 `json:"a"`

	// B is the second operand.
	B float64 `json:"b"`
}

// Bind implements render.Binder. The operands are deliberately not
// validated; any float64 the body parses to is accepted.
func (s *SumRequest) Bind(_ *http.Request) error {
	return nil
}

// SumResponse carries the result of the sum endpoint.
type SumResponse struct {
	// Sum is a + b.
	Sum float64 `json:"sum"`
}

// MenuResponse carries the kitchen menu.
type MenuResponse struct {
	// Special is the chef's chosen dish.
	Special string `json:"special"`

	// Dishes is the list of available dish names.
	Dishes []string `json:"dishes"`
}
