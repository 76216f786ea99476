package component

// CollisionLayer declares what an entity is and what it collides with. The
// physics system maps Category onto the shape filter and uses it to
// classify raycast and contact results.
type CollisionLayer struct {
	Category Category
	// Mask is the set of categories this entity should collide with. If zero
	// the physics system treats it as CategoryAll.
	Mask Category
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
