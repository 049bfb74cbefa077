package domain

type DocumentStatus string

const (
	DocumentStatusOK          DocumentStatus = "ok"
	DocumentStatusNeedsReview DocumentStatus = "needs_review"
	DocumentStatusExpired     DocumentStatus = "expired"
	DocumentStatusMissing     DocumentStatus = "missing"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusOK, DocumentStatusNeedsReview, DocumentStatusExpired, DocumentStatusMissing:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusOpen    TaskStatus = "open"
	TaskStatusSnoozed TaskStatus = "snoozed"
	TaskStatusDone    TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusSnoozed, TaskStatusDone:
		return true
	}
	return false
}

type TaskSource string

const (
	TaskSourceManual      TaskSource = "manual"
	TaskSourceMissingItem TaskSource = "missing_item"
)

func (s TaskSource) Valid() bool {
	return s == TaskSourceManual || s == TaskSourceMissingItem
}
