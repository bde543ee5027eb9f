package model

import "strings"

type LessonStatus string

const (
	LessonPending  LessonStatus = "pending"
	LessonReading  LessonStatus = "reading"
	LessonHomework LessonStatus = "homework"
	LessonReview   LessonStatus = "review"
	LessonMastered LessonStatus = "mastered"
)

// LessonStatusOrder 状态循环的固定顺序。推进用下标取模，
// 不依赖枚举在宿主语言里的隐式顺序
var LessonStatusOrder = []LessonStatus{
	LessonPending,
	LessonReading,
	LessonHomework,
	LessonReview,
	LessonMastered,
}

// NextLessonStatus 前进一步，mastered之后回绕到pending。
// 未知状态视为pending，推进到reading
func NextLessonStatus(s LessonStatus) LessonStatus {
	idx := 0
	for i, v := range LessonStatusOrder {
		if v == s {
			idx = i
			break
		}
	}
	return LessonStatusOrder[(idx+1)%len(LessonStatusOrder)]
}

type Lesson struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Status LessonStatus `json:"status"`
}

type Unit struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type BacklogItemType string

const (
	BacklogChapter BacklogItemType = "chapter"
	BacklogUnit    BacklogItemType = "unit"
	BacklogLesson  BacklogItemType = "lesson"
	BacklogLecture BacklogItemType = "lecture"
)

// StudyConfig 单科的补课参数，AI周计划生成的输入
type StudyConfig struct {
	AccumulatedChapters int `json:"accumulatedChapters"` // 旧字段，兼容历史存档

	BacklogType   BacklogItemType `json:"backlogType"`
	BacklogCount  int             `json:"backlogCount"`  // 未完成条目数，>=0
	ItemDuration  float64         `json:"itemDuration"`  // 单条内容时长（小时）
	StudyDuration float64         `json:"studyDuration"` // 单条消化/刷题时长（小时）

	Mode             string   `json:"mode"` // center | online
	StudyHoursPerDay float64  `json:"studyHoursPerDay"`
	StudyDays        []string `json:"studyDays"`   // 可用学习日
	LectureDays      []string `json:"lectureDays"` // 固定出新课的日子
}

type Course struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	TeacherName  string       `json:"teacherName,omitempty"`
	StudyMode    string       `json:"studyMode,omitempty"` // online | offline
	Credits      float64      `json:"credits"`
	Difficulty   Difficulty   `json:"difficulty"`
	Color        string       `json:"color"`
	CurrentGrade *float64     `json:"currentGrade,omitempty"` // 0-100
	TargetGrade  *float64     `json:"targetGrade,omitempty"`  // 0-100
	Units        []Unit       `json:"units"`
	StudyConfig  *StudyConfig `json:"studyConfig,omitempty"`
}

// Clone 深拷贝，嵌套的切片和指针全部换新底层数组。
// 状态容器对外只交出克隆，调用方改自己的副本不会碰到共享内存
func (c Course) Clone() Course {
	out := c
	if c.Units != nil {
		out.Units = make([]Unit, len(c.Units))
		for i, u := range c.Units {
			out.Units[i] = u
			if u.Lessons != nil {
				out.Units[i].Lessons = append([]Lesson(nil), u.Lessons...)
			}
		}
	}
	if c.CurrentGrade != nil {
		v := *c.CurrentGrade
		out.CurrentGrade = &v
	}
	if c.TargetGrade != nil {
		v := *c.TargetGrade
		out.TargetGrade = &v
	}
	if c.StudyConfig != nil {
		cfg := *c.StudyConfig
		if cfg.StudyDays != nil {
			cfg.StudyDays = append([]string(nil), cfg.StudyDays...)
		}
		if cfg.LectureDays != nil {
			cfg.LectureDays = append([]string(nil), cfg.LectureDays...)
		}
		out.StudyConfig = &cfg
	}
	return out
}

// WeekDays 周的规范顺序，从周六开始（埃及的周从周六起算）
var WeekDays = []string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// CanonicalWeekDay 把缩写或全称归一到WeekDays里的全称，认不出返回空串
func CanonicalWeekDay(day string) string {
	for _, d := range WeekDays {
		if strings.EqualFold(day, d) || strings.EqualFold(day, d[:3]) {
			return d
		}
	}
	return ""
}
