package constants

type IssueStatus string

const (
	StatusTodo       IssueStatus = "todo"
	StatusInProgress IssueStatus = "inprogress"
	StatusDone       IssueStatus = "done"
)

func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityHighest IssuePriority = "highest"
	PriorityHigh    IssuePriority = "high"
	PriorityMedium  IssuePriority = "medium"
	PriorityLow     IssuePriority = "low"
	PriorityLowest  IssuePriority = "lowest"
)

func ValidIssuePriority(p IssuePriority) bool {
	switch p {
	case PriorityHighest, PriorityHigh, PriorityMedium, PriorityLow, PriorityLowest:
		return true
	}
	return false
}

type IssueType string

const (
	TypeStory   IssueType = "story"
	TypeTask    IssueType = "task"
	TypeBug     IssueType = "bug"
	TypeSubtask IssueType = "subtask"
)

func ValidIssueType(t IssueType) bool {
	switch t {
	case TypeStory, TypeTask, TypeBug, TypeSubtask:
		return true
	}
	return false
}

type SprintStatus string

const (
	SprintPending   SprintStatus = "pending"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

type NotificationType string

const (
	NotificationIssueAssigned NotificationType = "issue_assigned"
	NotificationStatusChanged NotificationType = "status_changed"
	NotificationCommentAdded  NotificationType = "comment_added"
	NotificationMention       NotificationType = "mention"
	NotificationSprintStarted NotificationType = "sprint_started"
)

type ActionType string

const (
	ActionIssueCreated ActionType = "issue_created"
	ActionIssueUpdated ActionType = "issue_updated"
	ActionIssueMoved   ActionType = "issue_moved"
	ActionIssueDeleted ActionType = "issue_deleted"
	ActionCommentAdded ActionType = "comment_added"
)

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

func ValidMemberRole(r MemberRole) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}
