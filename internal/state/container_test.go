package state

import (
	"path/filepath"
	"testing"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Document{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewContainer(store.NewStore(db, nil))
}

func TestNewContainerSeedsDefaults(t *testing.T) {
	c := newTestContainer(t)

	if len(c.Tasks()) == 0 {
		t.Fatalf("expected seeded default tasks")
	}
	if len(c.Courses()) == 0 {
		t.Fatalf("expected seeded default courses")
	}
	if c.Stats().Level < 1 {
		t.Fatalf("expected level >= 1, got %d", c.Stats().Level)
	}
}

func TestAddTaskPrepends(t *testing.T) {
	c := newTestContainer(t)

	c.AddTask(model.Task{ID: "t1", Title: "first"})
	c.AddTask(model.Task{ID: "t2", Title: "second"})

	tasks := c.Tasks()
	if tasks[0].ID != "t2" || tasks[1].ID != "t1" {
		t.Fatalf("new tasks must come first, got order %s, %s", tasks[0].ID, tasks[1].ID)
	}
}

func TestUpdateTaskMissing(t *testing.T) {
	c := newTestContainer(t)

	if c.UpdateTask(model.Task{ID: "nope", Title: "ghost"}) {
		t.Fatalf("UpdateTask returned true for unknown id")
	}
}

func TestToggleTask(t *testing.T) {
	c := newTestContainer(t)
	c.AddTask(model.Task{ID: "t1", Title: "حل واجب"})

	got, ok := c.ToggleTask("t1")
	if !ok || !got.IsCompleted {
		t.Fatalf("first toggle: ok=%v completed=%v", ok, got.IsCompleted)
	}
	got, ok = c.ToggleTask("t1")
	if !ok || got.IsCompleted {
		t.Fatalf("second toggle: ok=%v completed=%v", ok, got.IsCompleted)
	}
	if _, ok := c.ToggleTask("missing"); ok {
		t.Fatalf("toggle of unknown id returned ok")
	}
}

func TestDeleteTaskIdempotent(t *testing.T) {
	c := newTestContainer(t)
	c.AddTask(model.Task{ID: "t1"})
	before := len(c.Tasks())

	c.DeleteTask("t1")
	c.DeleteTask("t1")
	if len(c.Tasks()) != before-1 {
		t.Fatalf("expected %d tasks after delete, got %d", before-1, len(c.Tasks()))
	}
}

func TestCoursesReturnsDeepCopies(t *testing.T) {
	c := newTestContainer(t)
	c.AddCourse(model.Course{
		ID:   "phys",
		Name: "الفيزياء",
		Units: []model.Unit{{
			ID:      "u1",
			Title:   "الوحدة الأولى",
			Lessons: []model.Lesson{{ID: "l1", Title: "درس", Status: model.LessonPending}},
		}},
	})

	got := c.Courses()
	var course *model.Course
	for i := range got {
		if got[i].ID == "phys" {
			course = &got[i]
		}
	}
	if course == nil {
		t.Fatalf("added course not returned")
	}

	// 改副本的嵌套字段，容器内的权威数据不能跟着变
	course.Units[0].Lessons[0].Status = model.LessonMastered
	course.Units[0].Lessons = append(course.Units[0].Lessons, model.Lesson{ID: "l2"})
	course.Units = append(course.Units, model.Unit{ID: "u2"})

	for _, fresh := range c.Courses() {
		if fresh.ID != "phys" {
			continue
		}
		if len(fresh.Units) != 1 || len(fresh.Units[0].Lessons) != 1 {
			t.Fatalf("container units mutated through returned copy: %+v", fresh.Units)
		}
		if fresh.Units[0].Lessons[0].Status != model.LessonPending {
			t.Fatalf("container lesson status mutated: %s", fresh.Units[0].Lessons[0].Status)
		}
	}
}

func TestChatSessionsReturnsDeepCopies(t *testing.T) {
	c := newTestContainer(t)
	c.UpsertSession(model.ChatSession{
		ID:           "s1",
		Messages:     []model.ChatMessage{{ID: "m1", Role: model.RoleUser, Content: "سؤال"}},
		LastModified: 100,
	})

	got := c.ChatSessions()
	got[0].Messages[0].Content = "changed"
	got[0].Messages = append(got[0].Messages, model.ChatMessage{ID: "m2"})

	fresh := c.ChatSessions()
	if len(fresh[0].Messages) != 1 || fresh[0].Messages[0].Content != "سؤال" {
		t.Fatalf("container messages mutated through returned copy: %+v", fresh[0].Messages)
	}
}

func TestUpsertSessionOrdering(t *testing.T) {
	c := newTestContainer(t)

	c.UpsertSession(model.ChatSession{ID: "a", LastModified: 100})
	c.UpsertSession(model.ChatSession{ID: "b", LastModified: 300})
	c.UpsertSession(model.ChatSession{ID: "c", LastModified: 200})

	got := c.ChatSessions()
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	wantOrder := []string{"b", "c", "a"}
	for i, w := range wantOrder {
		if got[i].ID != w {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, w)
		}
	}

	// 同id再次保存应替换并重排，不得产生重复
	c.UpsertSession(model.ChatSession{ID: "a", LastModified: 400})
	got = c.ChatSessions()
	if len(got) != 3 {
		t.Fatalf("upsert duplicated a session, count %d", len(got))
	}
	if got[0].ID != "a" {
		t.Fatalf("updated session should sort first, got %s", got[0].ID)
	}
}

func TestStatePersistsAcrossContainers(t *testing.T) {
	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Document{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	st := store.NewStore(db, nil)

	c1 := NewContainer(st)
	c1.AddTask(model.Task{ID: "persisted", Title: "مراجعة"})

	c2 := NewContainer(st)
	found := false
	for _, task := range c2.Tasks() {
		if task.ID == "persisted" {
			found = true
		}
	}
	if !found {
		t.Fatalf("task written by first container not visible to second")
	}
}

func TestPrefs(t *testing.T) {
	c := newTestContainer(t)

	if got := c.Pref(store.KeyTrack, "none"); got != "none" {
		t.Fatalf("unset pref should return default, got %q", got)
	}
	c.SetPref(store.KeyTrack, "sci")
	if got := c.Pref(store.KeyTrack, "none"); got != "sci" {
		t.Fatalf("pref after set: got %q", got)
	}
	c.ClearPref(store.KeyTrack)
	if got := c.Pref(store.KeyTrack, "none"); got != "none" {
		t.Fatalf("pref after clear: got %q", got)
	}
}
