package service

import (
	"errors"
	"testing"
	"time"

	"thanawya_backend/internal/model"
)

func newTaskService(t *testing.T, ai AIClient) (*TaskService, *StatsService) {
	t.Helper()
	c := newTestContainer(t)
	clearTasks(t, c)
	stats := NewStatsService(c)
	return NewTaskService(c, ai, stats), stats
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})

	task := svc.Create("مراجعة الكيمياء", "", "", "weird", time.Time{})
	if task.Priority != model.PriorityMedium {
		t.Fatalf("invalid priority should default to Medium, got %s", task.Priority)
	}
	if task.DueDate.IsZero() {
		t.Fatalf("zero due date should default to now")
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestSmartAddFallsBackToLiteralTask(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{parseErr: errors.New("boom")})

	input := "ذاكر الباب التالت فيزياء بكرة"
	task := svc.SmartAdd(input)
	if task.Title != input {
		t.Fatalf("fallback title = %q, want the raw input", task.Title)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("fallback priority = %s, want Medium", task.Priority)
	}
	if task.CourseID != "" {
		t.Fatalf("fallback should not link a course, got %q", task.CourseID)
	}
}

func TestSmartAddMatchesCourseCaseInsensitive(t *testing.T) {
	c := newTestContainer(t)
	clearTasks(t, c)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "phys", Name: "Physics", Credits: 4})

	ai := &fakeAI{parseResult: &model.ParsedTask{
		Title:      "حل مسائل",
		CourseName: "pHYSics",
		DueDate:    "2026-09-01",
		Priority:   "High",
	}}
	svc := NewTaskService(c, ai, NewStatsService(c))

	task := svc.SmartAdd("حل مسائل فيزياء")
	if task.CourseID != "phys" {
		t.Fatalf("course match failed, got %q", task.CourseID)
	}
	if task.Priority != model.PriorityHigh {
		t.Fatalf("priority = %s, want High", task.Priority)
	}
	if task.DueDate.Format("2006-01-02") != "2026-09-01" {
		t.Fatalf("due date = %v", task.DueDate)
	}
}

func TestSmartAddUnknownCourseLeftUnlinked(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{parseResult: &model.ParsedTask{
		Title:      "مهمة",
		CourseName: "مادة مش موجودة",
		Priority:   "Low",
	}})

	task := svc.SmartAdd("مهمة")
	if task.CourseID != "" {
		t.Fatalf("unknown course name must not link, got %q", task.CourseID)
	}
}

func TestToggleAwardsXP(t *testing.T) {
	svc, stats := newTaskService(t, &fakeAI{})
	task := svc.Create("واجب", "", "", model.PriorityLow, time.Now())

	got, err := svc.Toggle(task.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !got.IsCompleted {
		t.Fatalf("expected completed after toggle")
	}
	st := stats.Stats()
	if st.XP != 10 || st.TasksCompleted != 1 {
		t.Fatalf("after completion xp=%d tasks=%d, want 10/1", st.XP, st.TasksCompleted)
	}

	// 取消完成要扣回
	if _, err := svc.Toggle(task.ID); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	st = stats.Stats()
	if st.XP != 0 || st.TasksCompleted != 0 {
		t.Fatalf("after undo xp=%d tasks=%d, want 0/0", st.XP, st.TasksCompleted)
	}
}

func TestToggleUnknownTask(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})
	if _, err := svc.Toggle("ghost"); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})
	if _, err := svc.Update(model.Task{ID: "ghost", Title: "x", Priority: model.PriorityLow}); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}

func TestCompletionRate(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})

	if got := svc.CompletionRate(); got != 0 {
		t.Fatalf("empty list rate = %d, want 0", got)
	}

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		task := svc.Create("t", "", "", model.PriorityLow, time.Now())
		ids = append(ids, task.ID)
	}
	for _, id := range ids[:3] {
		if _, err := svc.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	if got := svc.CompletionRate(); got != 75 {
		t.Fatalf("rate = %d, want 75", got)
	}

	// 删掉一个已完成的：2/3完成 → 66.67，四舍五入到67
	svc.Delete(ids[2])
	if got := svc.CompletionRate(); got != 67 {
		t.Fatalf("rate = %d, want 67", got)
	}
}

func TestPendingExcludesCompleted(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})
	a := svc.Create("a", "", "", model.PriorityLow, time.Now())
	svc.Create("b", "", "", model.PriorityLow, time.Now())
	if _, err := svc.Toggle(a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	pending := svc.Pending()
	if len(pending) != 1 || pending[0].Title != "b" {
		t.Fatalf("pending = %+v", pending)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newTaskService(t, &fakeAI{})
	task := svc.Create("t", "", "", model.PriorityLow, time.Now())

	svc.Delete(task.ID)
	svc.Delete(task.ID)
	if len(svc.List()) != 0 {
		t.Fatalf("expected empty list after delete")
	}
}
