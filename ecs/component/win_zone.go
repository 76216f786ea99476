package component

// WinZone is a trigger that ends the level when the player enters it.
type WinZone struct {
	Reached bool
}

var WinZoneComponent = NewComponent[WinZone]()
