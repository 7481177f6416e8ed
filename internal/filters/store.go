// Package filters persists per-user saved board filters. Filters are
// a convenience cache, not part of the correctness surface: losing
// them degrades to an unfiltered board.
package filters

import "context"

type Store interface {
	Get(ctx context.Context, projectID, userID string) (map[string]string, error)

	// Put replaces the user's saved filters for the project.
	Put(ctx context.Context, projectID, userID string, filters map[string]string) error
}
