// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import "fmt"

// Dimensions represents the extents of a rectangular box. All measurements
// share a single unit; the type performs no conversion.
type Dimensions struct {
	// Length of the box.
	Length float64 `json:"length"`

	// Width of the box.
	Width float64 `json:"width"`

	// Height of the box.
	Height float64 `json:"height"`
}

// NewDimensions creates a new Dimensions value object.
//
// Parameters:
//   - length: extent along the first axis
//   - width: extent along the second axis
//   - height: extent along the third axis
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(length, width, height float64) Dimensions {
	return Dimensions{
		Length: length,
		Width:  width,
		Height: height,
	}
}

// Volume calculates the volume of the box.
//
// Returns:
//   - float64: length × width × height
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// SurfaceArea calculates the total surface area of the box,
// 2·(lw + lh + wh).
//
// Returns:
//   - float64: the surface area
func (d Dimensions) SurfaceArea() float64 {
	return 2 * (d.Length*d.Width + d.Length*d.Height + d.Width*d.Height)
}

// IsCubic checks whether all three extents are equal.
//
// Returns:
//   - bool: true if length, width, and height match
func (d Dimensions) IsCubic() bool {
	return d.Length == d.Width && d.Width == d.Height
}

// IsEmpty checks if all dimensions are zero.
//
// Returns:
//   - bool: true if all dimensions are zero
func (d Dimensions) IsEmpty() bool {
	return d.Length == 0 && d.Width == 0 && d.Height == 0
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions (e.g., "3x3x3")
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.Length, d.Width, d.Height)
}
