package settings

import "errors"

var (
	ErrUnknownList      = errors.New("unknown list")
	ErrListItemExists   = errors.New("item already exists")
	ErrFieldExists      = errors.New("a field with this name already exists")
	ErrFieldNotFound    = errors.New("field not found")
	ErrFieldLocked      = errors.New("field is locked and cannot be disabled")
	ErrSystemField      = errors.New("system fields cannot be deleted")
	ErrUnknownFeature   = errors.New("unknown feature")
	ErrMalformedSetting = errors.New("stored settings are malformed")
)
