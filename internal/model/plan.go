package model

type PlanTaskType string

const (
	PlanLecture  PlanTaskType = "Lecture"
	PlanBacklog  PlanTaskType = "Backlog"
	PlanRevision PlanTaskType = "Revision"
)

type PlanTask struct {
	Subject  string       `json:"subject"`
	Type     PlanTaskType `json:"type"`
	Details  string       `json:"details"`
	Duration float64      `json:"duration"` // 小时
}

// DailyPlan 一周七天，规范顺序Saturday→Friday。
// 没有任务的一天是合法的休息日
type DailyPlan struct {
	Day        string     `json:"day"`
	Tasks      []PlanTask `json:"tasks"`
	TotalHours float64    `json:"totalHours"`
}

// PlanCourseInput 计划生成的出站输入：每门有积压或有固定课程日的科目一行
type PlanCourseInput struct {
	Subject          string   `json:"subject"`
	BacklogType      string   `json:"backlogType"`
	BacklogCount     int      `json:"backlogCount"`
	ItemDuration     float64  `json:"itemDuration"`
	StudyDuration    float64  `json:"studyDuration"`
	Mode             string   `json:"mode"`
	StudyHoursPerDay float64  `json:"studyHoursPerDay"`
	StudyDays        []string `json:"studyDays"`
	LectureDays      []string `json:"lectureDays"`
}
