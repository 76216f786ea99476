package component

// PortalEndpoint is one side of a linked portal pair. PartnerID names the
// other endpoint in level data; Partner is the resolved packed handle.
type PortalEndpoint struct {
	ID        string
	PartnerID string
	Partner   uint64

	FacingX float64
	FacingY float64

	ReverseExitDirection bool
	// ProjectileCooldown is how long a projectile's collider stays disabled
	// after leaving this pair, in seconds.
	ProjectileCooldown float64

	// Occupancy holds entities teleported into this endpoint that have not
	// yet been seen leaving its trigger.
	Occupancy map[uint64]struct{}
}

func (p *PortalEndpoint) Occupied(e uint64) bool {
	_, ok := p.Occupancy[e]
	return ok
}

func (p *PortalEndpoint) Occupy(e uint64) {
	if p.Occupancy == nil {
		p.Occupancy = make(map[uint64]struct{})
	}
	p.Occupancy[e] = struct{}{}
}

func (p *PortalEndpoint) Vacate(e uint64) {
	delete(p.Occupancy, e)
}

var PortalEndpointComponent = NewComponent[PortalEndpoint]()
