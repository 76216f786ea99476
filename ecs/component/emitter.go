package component

import "fmt"

// CaptureMode selects how the emitter acquires a target.
type CaptureMode int

const (
	// CaptureDirect seizes the first capturable hit by an instant ray.
	CaptureDirect CaptureMode = iota
	// CaptureProjectile fires a projectile that seizes on impact.
	CaptureProjectile
)

func (m CaptureMode) String() string {
	if m == CaptureProjectile {
		return "projectile"
	}
	return "direct"
}

// Other returns the opposite mode.
func (m CaptureMode) Other() CaptureMode {
	if m == CaptureProjectile {
		return CaptureDirect
	}
	return CaptureProjectile
}

func ParseCaptureMode(s string) (CaptureMode, error) {
	switch s {
	case "", "direct":
		return CaptureDirect, nil
	case "projectile":
		return CaptureProjectile, nil
	}
	return CaptureDirect, fmt.Errorf("component: unknown capture mode %q", s)
}

// PreviewMode selects the trajectory preview length.
type PreviewMode int

const (
	PreviewArrow PreviewMode = iota
	PreviewFull
)

func (m PreviewMode) String() string {
	if m == PreviewFull {
		return "full"
	}
	return "arrow"
}

func (m PreviewMode) Other() PreviewMode {
	if m == PreviewFull {
		return PreviewArrow
	}
	return PreviewFull
}

func ParsePreviewMode(s string) (PreviewMode, error) {
	switch s {
	case "", "arrow":
		return PreviewArrow, nil
	case "full":
		return PreviewFull, nil
	}
	return PreviewArrow, fmt.Errorf("component: unknown preview mode %q", s)
}

// Emitter is the capture-and-release controller. Captured is the packed
// handle of the held object, zero while idle.
type Emitter struct {
	CaptureMode    CaptureMode
	PreviewMode    PreviewMode
	RequireAimHeld bool

	CaptureRange  float64
	CaptureOffset float64

	// CaptureThroughObstacles lets direct capture take the first capturable
	// hit along the ray even when a wall comes before it.
	CaptureThroughObstacles bool

	AimArrowLength       float64
	FullTrajectoryLength float64
	PreviewPortalHops    int

	ProjectileSpeed  float64
	ProjectileRange  float64
	ProjectileOffset float64

	ReleaseOffset     float64
	ReleaseForce      float64
	ReleaseForceScale float64

	AimX float64
	AimY float64

	Captured        uint64
	PreviewDisabled bool
}

// ReleaseImpulse is the impulse magnitude applied on release.
func (e *Emitter) ReleaseImpulse() float64 {
	scale := e.ReleaseForceScale
	if scale == 0 {
		scale = 1
	}
	return e.ReleaseForce * scale
}

var EmitterComponent = NewComponent[Emitter]()
