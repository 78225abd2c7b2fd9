package wire

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is one straight conductor.
type Segment struct {
	A        r3.Vec  // first endpoint, inches
	B        r3.Vec  // second endpoint, inches
	Diameter float64 // stock diameter, inches
	Segments int     // simulator segment count
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.B, s.A))
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() r3.Vec {
	return r3.Scale(0.5, r3.Add(s.A, s.B))
}
