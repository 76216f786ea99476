package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"golang.org/x/image/colornames"
)

// Renderer draws RenderRect entities and trajectory previews.
type Renderer struct {
	entities []ecs.Entity
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, view View) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	r.entities = r.entities[:0]
	ecs.ForEach2(w, component.RenderRectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rect *component.RenderRect, _ *component.Transform) {
		if !rect.Hidden {
			r.entities = append(r.entities, e)
		}
	})
	sort.SliceStable(r.entities, func(i, j int) bool {
		li, _ := ecs.Get(w, r.entities[i], component.RenderRectComponent.Kind())
		lj, _ := ecs.Get(w, r.entities[j], component.RenderRectComponent.Kind())
		if li.Layer != lj.Layer {
			return li.Layer < lj.Layer
		}
		return uint64(r.entities[i]) < uint64(r.entities[j])
	})

	for _, e := range r.entities {
		rect, _ := ecs.Get(w, e, component.RenderRectComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		drawRect(screen, view, t, rect)
	}

	ecs.ForEach(w, component.TrajectoryPreviewComponent.Kind(), func(_ ecs.Entity, preview *component.TrajectoryPreview) {
		drawPreview(screen, view, preview)
	})
}

func drawRect(screen *ebiten.Image, view View, t *component.Transform, rect *component.RenderRect) {
	c := rect.Color
	if c == nil {
		c = colornames.Magenta
	}
	cx, cy := view.ToScreen(t.X, t.Y)
	zoom := view.Zoom

	if rect.Radius > 0 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rect.Radius*zoom), c, true)
		return
	}

	width := rect.Width * zoom
	height := rect.Height * zoom
	if t.Rotation != 0 {
		// Rotated boxes are drawn as a thick line along their long axis.
		dx := math.Cos(t.Rotation) * width / 2
		dy := math.Sin(t.Rotation) * width / 2
		vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), float32(height), c, true)
		return
	}
	vector.FillRect(screen, float32(cx-width/2), float32(cy-height/2), float32(width), float32(height), c, false)
}

func drawPreview(screen *ebiten.Image, view View, preview *component.TrajectoryPreview) {
	if !preview.Visible || len(preview.Points) < 4 {
		return
	}
	c := preview.Color
	if c == nil {
		c = colornames.Lightgrey
	}
	width := preview.Width
	if width <= 0 {
		width = 1
	}
	for i := 0; i+3 < len(preview.Points); i += 4 {
		x0, y0 := view.ToScreen(preview.Points[i], preview.Points[i+1])
		x1, y1 := view.ToScreen(preview.Points[i+2], preview.Points[i+3])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
	}
	n := len(preview.Points)
	ex, ey := view.ToScreen(preview.Points[n-2], preview.Points[n-1])
	marker := color.Color(colornames.White)
	if preview.Hit {
		marker = colornames.Orangered
	}
	vector.DrawFilledCircle(screen, float32(ex), float32(ey), width*2, marker, true)
}
