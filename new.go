package postlist

import (
	"errors"
)

// NewStoreOptions define the options for creating a new post store
type NewStoreOptions struct {
	InitialCapacity int
	DebugEnabled    bool
}

// NewStore creates a new, empty post store
func NewStore(opts NewStoreOptions) (StoreInterface, error) {
	if opts.InitialCapacity < 0 {
		return nil, errors.New("post store: InitialCapacity must not be negative")
	}

	store := &store{
		entries:      make([]Post, 0, opts.InitialCapacity),
		debugEnabled: opts.DebugEnabled,
	}

	return store, nil
}
