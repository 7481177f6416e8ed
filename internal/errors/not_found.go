package errors

import "net/http"

var ErrIssueNotFound = &Exception{
	Message:    "issue not found",
	StatusCode: http.StatusNotFound,
}

var ErrSprintNotFound = &Exception{
	Message:    "sprint not found",
	StatusCode: http.StatusNotFound,
}

var ErrProjectNotFound = &Exception{
	Message:    "project not found",
	StatusCode: http.StatusNotFound,
}

var ErrColumnNotFound = &Exception{
	Message:    "board column not found",
	StatusCode: http.StatusNotFound,
}

var ErrCommentNotFound = &Exception{
	Message:    "comment not found",
	StatusCode: http.StatusNotFound,
}

var ErrAttachmentNotFound = &Exception{
	Message:    "attachment not found",
	StatusCode: http.StatusNotFound,
}

var ErrNotificationNotFound = &Exception{
	Message:    "notification not found",
	StatusCode: http.StatusNotFound,
}
