package component

// Camera follows the player horizontally at a fixed height. Its transform is
// the world point at the center of the view.
type Camera struct {
	FollowSpeed float64
	FixedY      float64
	Zoom        float64
	ViewWidth   float64
	ViewHeight  float64
}

var CameraComponent = NewComponent[Camera]()
