package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// InputSystem samples keyboard, mouse and the first gamepad into every Input
// component. The pointer is converted to world space through the camera.
type InputSystem struct {
	screenW, screenH float64
	// Enabled is false while a menu owns the input.
	Enabled bool
}

func NewInputSystem(screenW, screenH float64) *InputSystem {
	return &InputSystem{screenW: screenW, screenH: screenH, Enabled: true}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !i.Enabled {
		ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
			px, py := input.PointerX, input.PointerY
			*input = component.Input{PointerX: px, PointerY: py}
		})
		return
	}

	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	primary := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	secondary := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	aimHeld := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	toggleCapture := inpututil.IsKeyJustPressed(ebiten.KeyQ)
	togglePreview := inpututil.IsKeyJustPressed(ebiten.KeyE)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	cx, cy := ebiten.CursorPosition()
	view := CameraView(w, i.screenW, i.screenH)
	pointerX, pointerY := view.ToWorld(float64(cx), float64(cy))
	stickAim := false
	stickX, stickY := 0.0, 0.0

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		primary = primary || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		secondary = secondary || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		aimHeld = aimHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		toggleCapture = toggleCapture || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		togglePreview = togglePreview || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			stickAim = true
			stickX, stickY = rx, ry
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.PointerX, input.PointerY = pointerX, pointerY
		if stickAim {
			// The stick aims relative to the entity rather than the screen.
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				input.PointerX = t.X + stickX*100
				input.PointerY = t.Y + stickY*100
			}
		}
		input.PrimaryPressed = primary
		input.SecondaryPressed = secondary
		input.AimHeld = aimHeld
		input.ToggleCaptureMode = toggleCapture
		input.TogglePreviewMode = togglePreview
		input.MoveX = moveX
		input.JumpPressed = jumpPressed
	})
}
