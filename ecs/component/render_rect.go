package component

import "image/color"

// RenderRect draws an entity as a filled box or circle centered on its
// transform.
type RenderRect struct {
	Width  float64
	Height float64
	Radius float64
	Color  color.Color
	Hidden bool
	Layer  int
}

var RenderRectComponent = NewComponent[RenderRect]()
