package directory

import "context"

// ServiceInterface defines the contract for directory view operations
type ServiceInterface interface {
	Project(ctx context.Context, state ViewState) Projection
}

// RecordStore exposes the loaded base collection
type RecordStore interface {
	Records() []UserRecord
}

// Ensure Service implements ServiceInterface and Loader implements RecordStore
var (
	_ ServiceInterface = (*Service)(nil)
	_ RecordStore      = (*Loader)(nil)
)
