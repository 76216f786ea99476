package entity

import "errors"

var (
	ErrUnknownComponent  = errors.New("entity: unknown component")
	ErrUnknownCategory   = errors.New("entity: unknown collision category")
	ErrUnknownEntityType = errors.New("entity: unknown level entity type")
)
