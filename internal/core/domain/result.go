package domain

import "errors"

// RebuildResult reports the outcome of dumping the assets impacted by a change.
type RebuildResult struct {
	// Succeeded lists the assets dumped without error, in dump order.
	Succeeded []string
	// Errors holds every failure, one per asset or cache operation.
	Errors []error
}

// Err joins all recorded errors, or returns nil.
func (r RebuildResult) Err() error {
	return errors.Join(r.Errors...)
}

// Empty reports whether nothing was attempted.
func (r RebuildResult) Empty() bool {
	return len(r.Succeeded) == 0 && len(r.Errors) == 0
}
