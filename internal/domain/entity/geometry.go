// Package entity defines the domain model shared by the window shell and the
// content bridge. These are plain Go values with no toolkit dependencies.
package entity

import (
	"fmt"
	"math"
)

// Point is a location in window or screen coordinates.
// Window coordinates have their origin at the top-left of the content area.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect represents a window's frame or a region inside the content area.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a Rect from origin and size components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.Origin.X += dx
	r.Origin.Y += dy
	return r
}

// Validate rejects non-finite components and negative sizes.
func (r Rect) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"x", r.Origin.X},
		{"y", r.Origin.Y},
		{"width", r.Size.Width},
		{"height", r.Size.Height},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigurationError{Field: "geometry." + f.name, Reason: "must be finite"}
		}
	}
	if r.Size.Width < 0 || r.Size.Height < 0 {
		return &ConfigurationError{
			Field:  "geometry.size",
			Reason: fmt.Sprintf("must not be negative (got %gx%g)", r.Size.Width, r.Size.Height),
		}
	}
	return nil
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
