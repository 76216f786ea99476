package render

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// View maps between world and screen coordinates. The camera transform is the
// world point at the center of the screen.
type View struct {
	CamX, CamY float64
	Zoom       float64
	ScreenW    float64
	ScreenH    float64
}

// CameraView reads the first camera in w. Without one the world origin sits
// at the screen center.
func CameraView(w *ecs.World, screenW, screenH float64) View {
	v := View{Zoom: 1, ScreenW: screenW, ScreenH: screenH}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX, v.CamY = t.X, t.Y
	}
	if c, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		v.Zoom = c.Zoom
	}
	return v
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.CamX)*v.Zoom + v.ScreenW/2, (y-v.CamY)*v.Zoom + v.ScreenH/2
}

func (v View) ToWorld(sx, sy float64) (float64, float64) {
	return (sx-v.ScreenW/2)/v.Zoom + v.CamX, (sy-v.ScreenH/2)/v.Zoom + v.CamY
}
