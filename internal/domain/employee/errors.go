package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateKey     = errors.New("employee with this PEN already exists")
	ErrEmptyID          = errors.New("PEN is required")
	ErrUnknownUnit      = errors.New("unknown unit code")
	ErrUnitScope        = errors.New("employee belongs to another unit")
)
