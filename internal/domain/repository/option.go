package repository

import "context"

// OptionRepository defines persistence for named option values.
type OptionRepository interface {
	// Get returns the stored value and true, or "" and false if unset.
	Get(ctx context.Context, name string) (string, bool, error)

	// Set stores or replaces the value of an option.
	Set(ctx context.Context, name, value string) error

	// Delete removes an option. Deleting an unset option is a no-op.
	Delete(ctx context.Context, name string) error
}
