package service

import (
	"errors"
	"sync"
	"testing"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
)

func newCurriculumService(t *testing.T) (*CurriculumService, *StatsService, *state.Container) {
	t.Helper()
	c := newTestContainer(t)
	clearCourses(t, c)
	stats := NewStatsService(c)
	return NewCurriculumService(c, stats), stats, c
}

func TestCreateCourseDefaultColor(t *testing.T) {
	svc, _, _ := newCurriculumService(t)

	course := svc.CreateCourse("الأحياء", 4, model.DifficultyMedium, "")
	if course.Color != "#6366f1" {
		t.Fatalf("default color = %q", course.Color)
	}
	if course.Units == nil {
		t.Fatalf("units must be initialized, not nil")
	}
}

func TestUnitAndLessonLifecycle(t *testing.T) {
	svc, _, _ := newCurriculumService(t)
	course := svc.CreateCourse("فيزياء", 5, model.DifficultyHard, "#6366f1")

	unit, err := svc.AddUnit(course.ID, "الباب الأول")
	if err != nil {
		t.Fatalf("AddUnit: %v", err)
	}
	lesson, err := svc.AddLesson(course.ID, unit.ID, "الشغل والطاقة")
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if lesson.Status != model.LessonPending {
		t.Fatalf("new lesson status = %s, want pending", lesson.Status)
	}

	if err := svc.DeleteLesson(course.ID, unit.ID, lesson.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	if err := svc.DeleteUnit(course.ID, unit.ID); err != nil {
		t.Fatalf("DeleteUnit: %v", err)
	}

	got, err := svc.Course(course.ID)
	if err != nil {
		t.Fatalf("Course: %v", err)
	}
	if len(got.Units) != 0 {
		t.Fatalf("units remain after delete: %+v", got.Units)
	}
}

func TestCycleLessonFullCycle(t *testing.T) {
	svc, _, _ := newCurriculumService(t)
	course := svc.CreateCourse("كيمياء", 4, model.DifficultyMedium, "")
	unit, _ := svc.AddUnit(course.ID, "u")
	lesson, _ := svc.AddLesson(course.ID, unit.ID, "l")

	want := []model.LessonStatus{
		model.LessonReading,
		model.LessonHomework,
		model.LessonReview,
		model.LessonMastered,
		model.LessonPending, // 第五次回绕
	}
	for i, w := range want {
		got, err := svc.CycleLesson(course.ID, unit.ID, lesson.ID)
		if err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if got.Status != w {
			t.Fatalf("cycle %d: status = %s, want %s", i, got.Status, w)
		}
	}
}

func TestCycleUpdatesMastery(t *testing.T) {
	svc, stats, _ := newCurriculumService(t)
	course := svc.CreateCourse("كيمياء", 4, model.DifficultyMedium, "")
	unit, _ := svc.AddUnit(course.ID, "u")
	l1, _ := svc.AddLesson(course.ID, unit.ID, "l1")
	svc.AddLesson(course.ID, unit.ID, "l2")

	// l1推到mastered：2课时中1个精通 → 50
	for i := 0; i < 4; i++ {
		if _, err := svc.CycleLesson(course.ID, unit.ID, l1.ID); err != nil {
			t.Fatalf("cycle: %v", err)
		}
	}
	if got := stats.Stats().MasteryScore; got != 50 {
		t.Fatalf("mastery = %d, want 50", got)
	}

	// 删掉精通的那课，剩下1个pending → 0
	if err := svc.DeleteLesson(course.ID, unit.ID, l1.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	if got := stats.Stats().MasteryScore; got != 0 {
		t.Fatalf("mastery after delete = %d, want 0", got)
	}
}

// 推进课时和读课程列表并发跑，-race下必须干净：
// 容器交出的副本不允许和权威数据共享底层数组
func TestCycleLessonConcurrentWithReaders(t *testing.T) {
	svc, _, c := newCurriculumService(t)
	course := svc.CreateCourse("فيزياء", 5, model.DifficultyHard, "")
	unit, _ := svc.AddUnit(course.ID, "u")
	lesson, _ := svc.AddLesson(course.ID, unit.ID, "l")

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := svc.CycleLesson(course.ID, unit.ID, lesson.ID); err != nil {
					t.Errorf("cycle: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for _, got := range c.Courses() {
					for _, u := range got.Units {
						for _, l := range u.Lessons {
							_ = l.Status
						}
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestCurriculumNotFoundErrors(t *testing.T) {
	svc, _, _ := newCurriculumService(t)
	course := svc.CreateCourse("A", 1, model.DifficultyEasy, "")
	unit, _ := svc.AddUnit(course.ID, "u")

	if _, err := svc.Course("ghost"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("course err = %v", err)
	}
	if _, err := svc.AddLesson(course.ID, "ghost", "x"); !errors.Is(err, util.ErrUnitNotFound) {
		t.Fatalf("unit err = %v", err)
	}
	if _, err := svc.CycleLesson(course.ID, unit.ID, "ghost"); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("lesson err = %v", err)
	}
	if err := svc.DeleteUnit("ghost", unit.ID); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("delete unit err = %v", err)
	}
}
