package dto

import "time"

type CreateSprintRequest struct {
	Name string `json:"name"`
	Goal string `json:"goal"`
}

type StartSprintRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type CompleteSprintRequest struct {
	MoveToSprintID *string `json:"move_to_sprint_id"`
}
