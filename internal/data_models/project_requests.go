package dto

import "sprint-board-system.com/sprint-board-system/internal/constants"

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserID string               `json:"user_id"`
	Role   constants.MemberRole `json:"role"`
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}
