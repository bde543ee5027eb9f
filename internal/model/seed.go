package model

import "time"

func f(v float64) *float64 { return &v }

// DefaultCourses 首次启动的示例课程，之后完全由用户数据覆盖
func DefaultCourses() []Course {
	return []Course{
		{
			ID:           "1",
			Name:         "فيزياء",
			Credits:      5,
			Difficulty:   DifficultyHard,
			Color:        "#6366f1",
			CurrentGrade: f(82),
			TargetGrade:  f(95),
			Units:        []Unit{},
		},
		{
			ID:           "2",
			Name:         "رياضيات (تفاضل وتكامل)",
			Credits:      6,
			Difficulty:   DifficultyHard,
			Color:        "#ec4899",
			CurrentGrade: f(92),
			TargetGrade:  f(98),
			Units:        []Unit{},
		},
		{
			ID:           "3",
			Name:         "كيمياء",
			Credits:      4,
			Difficulty:   DifficultyMedium,
			Color:        "#10b981",
			CurrentGrade: f(88),
			TargetGrade:  f(95),
			Units:        []Unit{},
		},
	}
}

func DefaultTasks() []Task {
	return []Task{
		{
			ID:          "1",
			Title:       "حل بنك أسئلة الفيزياء الباب الأول",
			DueDate:     time.Now().Add(24 * time.Hour),
			Priority:    PriorityHigh,
			IsCompleted: false,
			CourseID:    "1",
		},
	}
}

func DefaultSchedule() []ScheduleBlock {
	return []ScheduleBlock{
		{ID: "1", Title: "صلاة الفجر", Type: ActivityPrayer, StartTime: "04:30", DurationMinutes: 30},
		{ID: "2", Title: "مذاكرة فيزياء", Type: ActivityStudy, StartTime: "06:00", DurationMinutes: 120},
	}
}

func DefaultStats() UserStats {
	return UserStats{
		Level:      1,
		StreakDays: 1,
	}
}

// DefaultExamDate 高考默认日期，可在设置里改
const DefaultExamDate = "2026-06-20T00:00:00Z"
