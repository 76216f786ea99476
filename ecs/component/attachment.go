package component

// Attachment pins an entity's transform to a parent with an offset.
type Attachment struct {
	Parent  uint64
	OffsetX float64
	OffsetY float64
}

var AttachmentComponent = NewComponent[Attachment]()
