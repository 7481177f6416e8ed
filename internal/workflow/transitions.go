// Package workflow holds the issue status graph. It is pure lookup
// logic with no persistence or side effects.
package workflow

import "sprint-board-system.com/sprint-board-system/internal/constants"

// transitions is the full set of legal status edges. Anything absent,
// including self-transitions and the direct todo -> done jump, is
// illegal. Board drag-and-drop deliberately bypasses this table.
var transitions = map[constants.IssueStatus][]constants.IssueStatus{
	constants.StatusTodo:       {constants.StatusInProgress},
	constants.StatusInProgress: {constants.StatusTodo, constants.StatusDone},
	constants.StatusDone:       {constants.StatusInProgress},
}

// IsValidTransition reports whether an issue may move from one status
// to another through a status-field edit.
func IsValidTransition(from, to constants.IssueStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
