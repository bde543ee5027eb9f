package util

import "errors"

var (
	ErrCourseNotFound  = errors.New("课程不存在")
	ErrUnitNotFound    = errors.New("单元不存在")
	ErrLessonNotFound  = errors.New("课时不存在")
	ErrTaskNotFound    = errors.New("任务不存在")
	ErrSessionNotFound = errors.New("会话不存在")
	ErrMissingAPIKey   = errors.New("AI API key is not configured")
	ErrEmptyAIReply    = errors.New("AI returned no choices")
	ErrStaleResponse   = errors.New("stale AI response discarded")
)
