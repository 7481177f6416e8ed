package services

import (
	"context"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

// requireProjectMember gates every project-scoped mutation.
func requireProjectMember(ctx context.Context, projects *repository.ProjectRepository, projectID, userID string) error {
	member, err := projects.FindMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return apperrors.ErrForbidden
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

// optionalID maps an empty patch value to null so clients can clear
// assignee/sprint references.
func optionalID(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// dedupIDs drops empty strings, nil-derived values and duplicates
// while preserving order.
func dedupIDs(ids ...*string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == nil || *id == "" {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	return out
}
