package dto

import "sprint-board-system.com/sprint-board-system/internal/constants"

type CreateColumnRequest struct {
	Name   string                `json:"name"`
	Status constants.IssueStatus `json:"status"`
}

type UpdateColumnRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}
