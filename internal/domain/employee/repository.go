package employee

import "context"

// EmployeeRepository persists the whole collection as one value.
type EmployeeRepository interface {
	// LoadAll returns every record in storage order; an absent collection is empty.
	LoadAll(ctx context.Context) ([]Employee, error)
	// SaveAll overwrites the collection in a single write.
	SaveAll(ctx context.Context, employees []Employee) error
}
