package service

import (
	"math"
	"time"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
)

const (
	xpPerTask        = 10
	xpPerFocusMinute = 1
	xpPerLevel       = 100
)

// StatsService 经验值、等级、连续打卡天数的唯一写入口。
// 所有成长数值的变更都走这里，保证level永远和xp一致
type StatsService struct {
	container *state.Container
}

func NewStatsService(container *state.Container) *StatsService {
	return &StatsService{container: container}
}

func levelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}

// Touch 更新连续打卡：同一天幂等，隔一天+1，断档重置为1。
// 由活跃中间件在每次API请求时调用
func (s *StatsService) Touch() {
	today := time.Now().Format("2006-01-02")
	s.container.MutateStats(func(st *model.UserStats) {
		if st.LastActiveDate == today {
			return
		}
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		if st.LastActiveDate == yesterday {
			st.StreakDays++
		} else {
			st.StreakDays = 1
		}
		st.LastActiveDate = today
	})
}

// OnTaskToggled 任务完成态翻转时的积分结算，取消完成会扣回
func (s *StatsService) OnTaskToggled(nowCompleted bool) {
	s.container.MutateStats(func(st *model.UserStats) {
		if nowCompleted {
			st.XP += xpPerTask
			st.TasksCompleted++
		} else {
			st.XP -= xpPerTask
			if st.XP < 0 {
				st.XP = 0
			}
			if st.TasksCompleted > 0 {
				st.TasksCompleted--
			}
		}
		st.Level = levelForXP(st.XP)
	})
}

// OnFocusSession 专注计时结束，按分钟累积经验
func (s *StatsService) OnFocusSession(minutes int) {
	if minutes <= 0 {
		return
	}
	s.container.MutateStats(func(st *model.UserStats) {
		st.XP += minutes * xpPerFocusMinute
		st.TotalFocusMinutes += minutes
		st.Level = levelForXP(st.XP)
	})
}

// RecomputeMastery 掌握度 = 已精通课时占全部课时的百分比（四舍五入）
func (s *StatsService) RecomputeMastery() {
	courses := s.container.Courses()
	total, mastered := 0, 0
	for _, c := range courses {
		for _, u := range c.Units {
			for _, l := range u.Lessons {
				total++
				if l.Status == model.LessonMastered {
					mastered++
				}
			}
		}
	}
	score := 0
	if total > 0 {
		score = int(math.Round(float64(mastered) / float64(total) * 100))
	}
	s.container.MutateStats(func(st *model.UserStats) {
		st.MasteryScore = score
	})
}

func (s *StatsService) Stats() model.UserStats {
	return s.container.Stats()
}
