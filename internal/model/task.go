package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ValidPriority AI返回的优先级必须落在三个枚举值内
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CourseID    string    `json:"courseId,omitempty"` // 可能悬空，派生视图按"未关联"降级处理
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	Priority    Priority  `json:"priority"`
}

// ParsedTask AI自然语言解析任务的返回契约
type ParsedTask struct {
	Title      string `json:"title"`
	CourseName string `json:"courseName,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	Priority   string `json:"priority"`
}
