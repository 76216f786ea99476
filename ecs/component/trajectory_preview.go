package component

import "image/color"

// TrajectoryPreview is the polyline the aim system writes each frame. Points
// holds an even number of X,Y pairs, two per segment.
type TrajectoryPreview struct {
	Points  []float64
	Hit     bool
	Visible bool
	Width   float32
	Color   color.Color
}

var TrajectoryPreviewComponent = NewComponent[TrajectoryPreview]()
