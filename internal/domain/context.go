package domain

import "context"

// Action is a reversible write, e.g. storing a company's dates on one task.
type Action interface {
	// Execute applies the write. It must stop when ctx is done.
	Execute(ctx context.Context) error

	// Rollback puts back what Execute replaced. Only called after Execute
	// succeeded, and possibly after ctx was canceled.
	Rollback(ctx context.Context) error

	// Description names the write in logs: "save task 12 dates for company 4".
	Description() string
}

// WriteStager collects writes that are applied together later.
type WriteStager interface {
	// Stage makes entity the value read back under key for the rest of
	// the request and queues action.
	Stage(key string, entity any, action Action) error
}
