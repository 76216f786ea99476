package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	Sensor        bool    `yaml:"sensor"`
	FixedRotation bool    `yaml:"fixed_rotation"`
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

// CollisionLayerComponentSpec names categories rather than bits, e.g.
// category: capturable, mask: [player, obstacle].
type CollisionLayerComponentSpec struct {
	Category string   `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type PlayerComponentSpec struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	GroundProbe float64 `yaml:"ground_probe"`
}

type CameraComponentSpec struct {
	FollowSpeed float64 `yaml:"follow_speed"`
	FixedY      float64 `yaml:"fixed_y"`
	Zoom        float64 `yaml:"zoom"`
	ViewWidth   float64 `yaml:"view_width"`
	ViewHeight  float64 `yaml:"view_height"`
}

type EmitterComponentSpec struct {
	CaptureMode          string  `yaml:"capture_mode"`
	PreviewMode          string  `yaml:"preview_mode"`
	RequireAimHeld       bool    `yaml:"require_aim_held"`
	CaptureRange         float64 `yaml:"capture_range"`
	CaptureOffset        float64 `yaml:"capture_offset"`
	CaptureThroughWalls  bool    `yaml:"capture_through_walls"`
	AimArrowLength       float64 `yaml:"aim_arrow_length"`
	FullTrajectoryLength float64 `yaml:"full_trajectory_length"`
	PreviewPortalHops    int     `yaml:"preview_portal_hops"`
	ProjectileSpeed      float64 `yaml:"projectile_speed"`
	ProjectileRange      float64 `yaml:"projectile_range"`
	ProjectileOffset     float64 `yaml:"projectile_offset"`
	ReleaseOffset        float64 `yaml:"release_offset"`
	ReleaseForce         float64 `yaml:"release_force"`
	ReleaseForceScale    float64 `yaml:"release_force_scale"`
}

type PortalComponentSpec struct {
	ID                   string  `yaml:"id"`
	PartnerID            string  `yaml:"partner_id"`
	FacingX              float64 `yaml:"facing_x"`
	FacingY              float64 `yaml:"facing_y"`
	ReverseExitDirection bool    `yaml:"reverse_exit_direction"`
	ProjectileCooldown   float64 `yaml:"projectile_cooldown"`
}

type RenderRectComponentSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
	Layer  int        `yaml:"layer"`
}

type TrajectoryPreviewComponentSpec struct {
	Width float32    `yaml:"width"`
	Color *YAMLColor `yaml:"color"`
}

type AttachmentComponentSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}
