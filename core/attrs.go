// Package core: typed numeric attribute accessors.
//
// Attributes replace runtime type inspection with explicit
// (float64, bool) lookups: callers test presence and choose their own
// default when the attribute is absent.

package core

// Conventional attribute names used across the module.
const (
	// AttrWeight is the conventional edge traversal cost attribute.
	AttrWeight = "weight"

	// AttrX, AttrY, AttrZ are the conventional vertex coordinate attributes.
	AttrX = "x"
	AttrY = "y"
	AttrZ = "z"
)

// Number returns the named numeric attribute and whether it is set.
func (v *Vertex) Number(name string) (float64, bool) {
	val, ok := v.attrs[name]

	return val, ok
}

// SetNumber sets the named numeric attribute on the vertex.
func (v *Vertex) SetNumber(name string, value float64) {
	if v.attrs == nil {
		v.attrs = make(map[string]float64)
	}
	v.attrs[name] = value
}

// Number returns the named numeric attribute and whether it is set.
func (e *Edge) Number(name string) (float64, bool) {
	val, ok := e.attrs[name]

	return val, ok
}

// SetNumber sets the named numeric attribute on the edge.
func (e *Edge) SetNumber(name string, value float64) {
	if e.attrs == nil {
		e.attrs = make(map[string]float64)
	}
	e.attrs[name] = value
}

// Position resolves the vertex coordinates from the "x"/"y"/"z"
// attributes. It returns the coordinate triple, the dimension
// (2 when "z" is absent, 3 otherwise), and whether a position exists
// at all ("x" and "y" must both be present).
func (v *Vertex) Position() (pos [3]float64, dim int, ok bool) {
	x, okX := v.Number(AttrX)
	y, okY := v.Number(AttrY)
	if !okX || !okY {
		return pos, 0, false
	}
	pos[0], pos[1] = x, y

	dim = 2
	if z, okZ := v.Number(AttrZ); okZ {
		pos[2] = z
		dim = 3
	}

	return pos, dim, true
}
