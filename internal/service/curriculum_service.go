package service

import (
	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
)

// CurriculumService 课程地图：课程/单元/课时三层结构的维护，
// 课时状态按固定周期滚动
type CurriculumService struct {
	container *state.Container
	stats     *StatsService
}

func NewCurriculumService(container *state.Container, stats *StatsService) *CurriculumService {
	return &CurriculumService{container: container, stats: stats}
}

func (s *CurriculumService) Courses() []model.Course {
	return s.container.Courses()
}

func (s *CurriculumService) Course(id string) (model.Course, error) {
	for _, c := range s.container.Courses() {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Course{}, util.ErrCourseNotFound
}

func (s *CurriculumService) CreateCourse(name string, credits float64, difficulty model.Difficulty, color string) model.Course {
	if color == "" {
		color = "#6366f1"
	}
	course := model.Course{
		ID:         model.GenerateID(),
		Name:       name,
		Credits:    credits,
		Difficulty: difficulty,
		Color:      color,
		Units:      []model.Unit{},
	}
	s.container.AddCourse(course)
	return course
}

func (s *CurriculumService) DeleteCourse(id string) {
	s.container.DeleteCourse(id)
	s.stats.RecomputeMastery()
}

func (s *CurriculumService) AddUnit(courseID, title string) (model.Unit, error) {
	course, err := s.Course(courseID)
	if err != nil {
		return model.Unit{}, err
	}
	unit := model.Unit{
		ID:      model.GenerateID(),
		Title:   title,
		Lessons: []model.Lesson{},
	}
	course.Units = append(course.Units, unit)
	s.container.UpdateCourse(course)
	return unit, nil
}

func (s *CurriculumService) DeleteUnit(courseID, unitID string) error {
	course, err := s.Course(courseID)
	if err != nil {
		return err
	}
	for i, u := range course.Units {
		if u.ID == unitID {
			course.Units = append(course.Units[:i], course.Units[i+1:]...)
			s.container.UpdateCourse(course)
			s.stats.RecomputeMastery()
			return nil
		}
	}
	return util.ErrUnitNotFound
}

func (s *CurriculumService) AddLesson(courseID, unitID, title string) (model.Lesson, error) {
	course, err := s.Course(courseID)
	if err != nil {
		return model.Lesson{}, err
	}
	for i, u := range course.Units {
		if u.ID == unitID {
			lesson := model.Lesson{
				ID:     model.GenerateID(),
				Title:  title,
				Status: model.LessonPending,
			}
			course.Units[i].Lessons = append(course.Units[i].Lessons, lesson)
			s.container.UpdateCourse(course)
			s.stats.RecomputeMastery()
			return lesson, nil
		}
	}
	return model.Lesson{}, util.ErrUnitNotFound
}

func (s *CurriculumService) DeleteLesson(courseID, unitID, lessonID string) error {
	course, err := s.Course(courseID)
	if err != nil {
		return err
	}
	for i, u := range course.Units {
		if u.ID != unitID {
			continue
		}
		for j, l := range u.Lessons {
			if l.ID == lessonID {
				course.Units[i].Lessons = append(u.Lessons[:j], u.Lessons[j+1:]...)
				s.container.UpdateCourse(course)
				s.stats.RecomputeMastery()
				return nil
			}
		}
		return util.ErrLessonNotFound
	}
	return util.ErrUnitNotFound
}

// CycleLesson 课时状态沿固定周期推进一格：
// pending → reading → homework → review → mastered → pending
func (s *CurriculumService) CycleLesson(courseID, unitID, lessonID string) (model.Lesson, error) {
	course, err := s.Course(courseID)
	if err != nil {
		return model.Lesson{}, err
	}
	for i, u := range course.Units {
		if u.ID != unitID {
			continue
		}
		for j, l := range u.Lessons {
			if l.ID == lessonID {
				l.Status = model.NextLessonStatus(l.Status)
				course.Units[i].Lessons[j] = l
				s.container.UpdateCourse(course)
				s.stats.RecomputeMastery()
				return l, nil
			}
		}
		return model.Lesson{}, util.ErrLessonNotFound
	}
	return model.Lesson{}, util.ErrUnitNotFound
}
