package component

import "strings"

// Category is the capability an entity exposes to contact and query logic.
// Values are single bits so they can also be combined into query masks.
type Category uint32

const (
	CategoryPlayer Category = 1 << iota
	CategoryCapturable
	CategoryProjectile
	CategoryPortalEndpoint
	CategoryObstacle

	CategoryNone Category = 0
	CategoryAll  Category = CategoryPlayer | CategoryCapturable | CategoryProjectile | CategoryPortalEndpoint | CategoryObstacle
)

var categoryNames = map[string]Category{
	"player":     CategoryPlayer,
	"capturable": CategoryCapturable,
	"projectile": CategoryProjectile,
	"portal":     CategoryPortalEndpoint,
	"obstacle":   CategoryObstacle,
}

// ParseCategory maps a prefab category name to its value.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Has reports whether every bit of o is set in c.
func (c Category) Has(o Category) bool {
	return o != 0 && c&o == o
}

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryPlayer:
		return "player"
	case CategoryCapturable:
		return "capturable"
	case CategoryProjectile:
		return "projectile"
	case CategoryPortalEndpoint:
		return "portal"
	case CategoryObstacle:
		return "obstacle"
	}
	var parts []string
	for _, single := range []Category{CategoryPlayer, CategoryCapturable, CategoryProjectile, CategoryPortalEndpoint, CategoryObstacle} {
		if c.Has(single) {
			parts = append(parts, single.String())
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
