package employee

import (
	"context"
)

// EmployeeService owns the employee collection.
type EmployeeService interface {
	// ListAll returns every record in storage order
	ListAll(ctx context.Context) ([]Employee, error)

	// ListByUnit filters on exact unit code; settings.AllUnits returns everything
	ListByUnit(ctx context.Context, unitCode string) ([]Employee, error)

	Get(ctx context.Context, id string) (Employee, error)
	Exists(ctx context.Context, id string) (bool, error)

	// Upsert fails with ErrDuplicateKey when isNew and the id is taken
	Upsert(ctx context.Context, emp Employee, isNew bool) error

	// Delete and BulkDelete ignore ids that are not present
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) error

	// BulkAdd inserts candidates whose ids are new; skipped ones are reported, not returned as errors
	BulkAdd(ctx context.Context, candidates []Employee) (BulkAddResult, error)

	// BulkUpdate replaces matching records in place and drops the rest
	BulkUpdate(ctx context.Context, employees []Employee) error

	// Transfer moves records to another unit and marks them Transferred
	Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error)

	Search(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Stats(ctx context.Context, unitCode string) (Stats, error)
}
