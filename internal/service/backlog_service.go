package service

import (
	"go.uber.org/zap"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
	"thanawya_backend/pkg/logger"
)

// TrackSubject 分科目录里的一个科目
type TrackSubject struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// 固定分科目录。共同科目所有人都学，理科再分科学/数学方向
var (
	commonSubjects = []TrackSubject{
		{Name: "اللغة العربية", Color: "#10b981"},
		{Name: "اللغة الإنجليزية", Color: "#f59e0b"},
		{Name: "اللغة الثانية (فرنساوي/ألماني/إيطالي)", Color: "#8b5cf6"},
	}
	artsSubjects = []TrackSubject{
		{Name: "التاريخ", Color: "#ef4444"},
		{Name: "الجغرافيا", Color: "#3b82f6"},
		{Name: "الفلسفة والمنطق", Color: "#ec4899"},
		{Name: "علم النفس والاجتماع", Color: "#f97316"},
	}
	sciScienceSubjects = []TrackSubject{
		{Name: "الفيزياء", Color: "#6366f1"},
		{Name: "الكيمياء", Color: "#14b8a6"},
		{Name: "الأحياء", Color: "#84cc16"},
		{Name: "الجيولوجيا", Color: "#a855f7"},
	}
	sciMathSubjects = []TrackSubject{
		{Name: "الفيزياء", Color: "#6366f1"},
		{Name: "الكيمياء", Color: "#14b8a6"},
		{Name: "الرياضيات البحتة (تفاضل/جبر)", Color: "#06b6d4"},
		{Name: "الرياضيات التطبيقية (استاتيكا/ديناميكا)", Color: "#f43f5e"},
	}
)

// BacklogService 补课规划：分科选择、各科学习配置、AI周计划
type BacklogService struct {
	container *state.Container
	ai        AIClient
}

func NewBacklogService(container *state.Container, ai AIClient) *BacklogService {
	return &BacklogService{container: container, ai: ai}
}

// Track 当前保存的分科选择，空串表示还没选
func (s *BacklogService) Track() (track, subTrack string) {
	return s.container.Pref(store.KeyTrack, ""), s.container.Pref(store.KeySubTrack, "")
}

func (s *BacklogService) SetTrack(track, subTrack string) {
	s.container.SetPref(store.KeyTrack, track)
	if subTrack != "" {
		s.container.SetPref(store.KeySubTrack, subTrack)
	}
}

// ResetTrack 清掉分科选择，回到选科一步
func (s *BacklogService) ResetTrack() {
	s.container.ClearPref(store.KeyTrack)
	s.container.ClearPref(store.KeySubTrack)
}

// Subjects 按分科拼出科目清单：共同科目 + 所选方向的科目。
// 理科缺子方向时按数学方向处理
func (s *BacklogService) Subjects() []TrackSubject {
	track, subTrack := s.Track()
	subjects := make([]TrackSubject, 0, len(commonSubjects)+4)
	subjects = append(subjects, commonSubjects...)
	switch track {
	case "arts":
		subjects = append(subjects, artsSubjects...)
	case "sci":
		if subTrack == "science" {
			subjects = append(subjects, sciScienceSubjects...)
		} else {
			subjects = append(subjects, sciMathSubjects...)
		}
	}
	return subjects
}

// SaveConfig 保存某科目的学习配置。科目没有对应课程时先建一个
// （学分4、难度Medium、当前分0）
func (s *BacklogService) SaveConfig(subjectName, color string, cfg model.StudyConfig) model.Course {
	for _, c := range s.container.Courses() {
		if c.Name == subjectName {
			c.StudyConfig = &cfg
			s.container.UpdateCourse(c)
			return c
		}
	}
	zero := 0.0
	course := model.Course{
		ID:           model.GenerateID(),
		Name:         subjectName,
		Credits:      4,
		Difficulty:   model.DifficultyMedium,
		Color:        color,
		CurrentGrade: &zero,
		Units:        []model.Unit{},
		StudyConfig:  &cfg,
	}
	s.container.AddCourse(course)
	return course
}

// BacklogTotal 所有课程的待补数量合计，没配置的课程按0算
func (s *BacklogService) BacklogTotal() int {
	total := 0
	for _, c := range s.container.Courses() {
		if c.StudyConfig != nil {
			total += c.StudyConfig.BacklogCount
		}
	}
	return total
}

// planRows 参与排课的课程：有配置且（有积压或有固定课日）
func (s *BacklogService) planRows() []model.PlanCourseInput {
	rows := []model.PlanCourseInput{}
	for _, c := range s.container.Courses() {
		cfg := c.StudyConfig
		if cfg == nil {
			continue
		}
		if cfg.BacklogCount <= 0 && len(cfg.LectureDays) == 0 {
			continue
		}
		rows = append(rows, model.PlanCourseInput{
			Subject:          c.Name,
			BacklogType:      string(cfg.BacklogType),
			BacklogCount:     cfg.BacklogCount,
			ItemDuration:     cfg.ItemDuration,
			StudyDuration:    cfg.StudyDuration,
			Mode:             cfg.Mode,
			StudyHoursPerDay: cfg.StudyHoursPerDay,
			StudyDays:        cfg.StudyDays,
			LectureDays:      cfg.LectureDays,
		})
	}
	return rows
}

// GeneratePlan 生成一周补课计划。没有可排课程或AI失败都返回空计划，
// 调用端据此展示"暂无计划"
func (s *BacklogService) GeneratePlan() []model.DailyPlan {
	rows := s.planRows()
	if len(rows) == 0 {
		return []model.DailyPlan{}
	}

	plan, err := s.ai.GeneratePlan(rows)
	if err != nil {
		logger.Log.Warn("AI生成补课计划失败", zap.Error(err))
		return []model.DailyPlan{}
	}
	return normalizePlan(plan)
}

// normalizePlan 把回包按周六到周五的固定顺序归一化，
// 模型漏掉的天补空行，认不出的天名丢弃
func normalizePlan(plan []model.DailyPlan) []model.DailyPlan {
	byDay := make(map[string]model.DailyPlan, len(plan))
	for _, d := range plan {
		key := model.CanonicalWeekDay(d.Day)
		if key == "" {
			continue
		}
		if existing, ok := byDay[key]; ok {
			existing.Tasks = append(existing.Tasks, d.Tasks...)
			existing.TotalHours += d.TotalHours
			byDay[key] = existing
			continue
		}
		d.Day = key
		byDay[key] = d
	}

	out := make([]model.DailyPlan, 0, len(model.WeekDays))
	for _, day := range model.WeekDays {
		if d, ok := byDay[day]; ok {
			out = append(out, d)
		} else {
			out = append(out, model.DailyPlan{Day: day, Tasks: []model.PlanTask{}})
		}
	}
	return out
}
