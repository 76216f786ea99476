package component

// Projectile travels in a straight line from its current origin. Traveled is
// always measured from OriginX/OriginY, which portals reset.
type Projectile struct {
	OriginX float64
	OriginY float64
	DirX    float64
	DirY    float64

	Speed       float64
	MaxDistance float64
	Traveled    float64

	Owner uint64

	ColliderDisabled bool
	ReenableTimer    uint64
}

var ProjectileComponent = NewComponent[Projectile]()
