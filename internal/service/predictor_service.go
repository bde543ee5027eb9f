package service

import (
	"fmt"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
)

// PredictorService 总评预测：学分加权平均、最大差距科目、假设推演
type PredictorService struct {
	container *state.Container
}

func NewPredictorService(container *state.Container) *PredictorService {
	return &PredictorService{container: container}
}

// courseScore useTarget时缺目标分退回当前分，再缺按0；
// 否则只看当前分
func courseScore(c model.Course, useTarget bool) float64 {
	if useTarget {
		if c.TargetGrade != nil {
			return *c.TargetGrade
		}
		if c.CurrentGrade != nil {
			return *c.CurrentGrade
		}
		return 0
	}
	if c.CurrentGrade != nil {
		return *c.CurrentGrade
	}
	return 0
}

// WeightedTotal 学分加权总评：Σ(分数×学分)/Σ(学分)，无课程时为0
func (s *PredictorService) WeightedTotal(useTarget bool) float64 {
	return weightedTotal(s.container.Courses(), useTarget)
}

func weightedTotal(courses []model.Course, useTarget bool) float64 {
	totalCredits := 0.0
	weighted := 0.0
	for _, c := range courses {
		weighted += courseScore(c, useTarget) * c.Credits
		totalCredits += c.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return weighted / totalCredits
}

// FormatTotal 展示用两位小数（"87.20"）
func FormatTotal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// BiggestGap 目标与当前差距最大的课程。差距必须严格大于0，
// 并列取先遇到的；没有正差距返回nil
func (s *PredictorService) BiggestGap() *model.Course {
	return biggestGap(s.container.Courses())
}

func biggestGap(courses []model.Course) *model.Course {
	var best *model.Course
	bestGap := 0.0
	for i := range courses {
		c := courses[i]
		target, current := 0.0, 0.0
		if c.TargetGrade != nil {
			target = *c.TargetGrade
		}
		if c.CurrentGrade != nil {
			current = *c.CurrentGrade
		}
		gap := target - current
		if gap > bestGap {
			bestGap = gap
			best = &courses[i]
		}
	}
	return best
}

func clampGrade(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// UpdateGrades 更新某课程的当前/目标分，越界值截断到[0,100]
func (s *PredictorService) UpdateGrades(courseID string, current, target *float64) (model.Course, error) {
	for _, c := range s.container.Courses() {
		if c.ID == courseID {
			if current != nil {
				v := clampGrade(*current)
				c.CurrentGrade = &v
			}
			if target != nil {
				v := clampGrade(*target)
				c.TargetGrade = &v
			}
			s.container.UpdateCourse(c)
			return c, nil
		}
	}
	return model.Course{}, util.ErrCourseNotFound
}

// SimulationResult 假设推演结果，不落库
type SimulationResult struct {
	Subject string  `json:"subject"`
	Before  float64 `json:"before"`
	After   float64 `json:"after"`
}

// SimulateImprovement 推演：当前分最低的课程+5分（封顶100）后的总评。
// 纯计算，状态不变
func (s *PredictorService) SimulateImprovement() *SimulationResult {
	courses := s.container.Courses()
	if len(courses) == 0 {
		return nil
	}

	lowest := 0
	lowestScore := courseScore(courses[0], false)
	for i, c := range courses {
		if sc := courseScore(c, false); sc < lowestScore {
			lowestScore = sc
			lowest = i
		}
	}

	before := weightedTotal(courses, false)

	improved := make([]model.Course, len(courses))
	copy(improved, courses)
	bumped := clampGrade(lowestScore + 5)
	improved[lowest].CurrentGrade = &bumped

	return &SimulationResult{
		Subject: courses[lowest].Name,
		Before:  before,
		After:   weightedTotal(improved, false),
	}
}
