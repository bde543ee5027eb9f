package model

// UserStats 单用户的累计统计。XP/等级/连续天数的积累公式属于应用策略，
// 见stats_service
type UserStats struct {
	Level             int `json:"level"`
	XP                int `json:"xp"`
	StreakDays        int `json:"streakDays"`
	TotalFocusMinutes int `json:"totalFocusMinutes"`
	TasksCompleted    int `json:"tasksCompleted"`
	MasteryScore      int `json:"masteryScore"` // 0-100

	// 最近一次活跃的日历日（YYYY-MM-DD），跨天比较维护streak用
	LastActiveDate string `json:"lastActiveDate,omitempty"`
}
