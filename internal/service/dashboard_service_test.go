package service

import (
	"testing"
	"time"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
)

func newDashboardService(t *testing.T) (*DashboardService, *state.Container) {
	t.Helper()
	c := newTestContainer(t)
	stats := NewStatsService(c)
	tasks := NewTaskService(c, &fakeAI{}, stats)
	predictor := NewPredictorService(c)
	return NewDashboardService(c, tasks, predictor, stats), c
}

func TestExamDateDefault(t *testing.T) {
	svc, _ := newDashboardService(t)

	want, _ := time.Parse(time.RFC3339, model.DefaultExamDate)
	if !svc.ExamDate().Equal(want) {
		t.Fatalf("default exam date = %v, want %v", svc.ExamDate(), want)
	}
}

func TestExamDateBadArchiveFallsBack(t *testing.T) {
	svc, c := newDashboardService(t)
	c.SetPref("examDate", "not-a-date")

	want, _ := time.Parse(time.RFC3339, model.DefaultExamDate)
	if !svc.ExamDate().Equal(want) {
		t.Fatalf("corrupt archive should fall back to default, got %v", svc.ExamDate())
	}
}

func TestSetExamDateRoundTrip(t *testing.T) {
	svc, _ := newDashboardService(t)

	d := time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC)
	svc.SetExamDate(d)
	if !svc.ExamDate().Equal(d) {
		t.Fatalf("exam date round trip: %v", svc.ExamDate())
	}
}

func TestDaysLeftRoundsUpAndFloorsAtZero(t *testing.T) {
	svc, _ := newDashboardService(t)

	// 36小时后：向上取整为2天
	svc.SetExamDate(time.Now().Add(36 * time.Hour))
	if got := svc.DaysLeft(); got != 2 {
		t.Fatalf("days left = %d, want 2", got)
	}

	// 考试日已过：显示0，不出现负数
	svc.SetExamDate(time.Now().AddDate(0, 0, -10))
	if got := svc.DaysLeft(); got != 0 {
		t.Fatalf("past exam date days left = %d, want 0", got)
	}
}

func TestQuoteIsAlwaysFromCatalog(t *testing.T) {
	svc, _ := newDashboardService(t)

	q := svc.Quote()
	found := false
	for _, want := range motivationalQuotes {
		if q == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("quote %q not in catalog", q)
	}

	svc.rotateQuote()
	if svc.Quote() == "" {
		t.Fatalf("rotation produced an empty quote")
	}
}

func TestSummaryTopThreeTasks(t *testing.T) {
	svc, c := newDashboardService(t)
	clearTasks(t, c)
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		c.AddTask(model.Task{ID: id, Title: id, Priority: model.PriorityLow})
	}

	sum := svc.Summary()
	if len(sum.TopTasks) != 3 {
		t.Fatalf("top tasks = %d, want 3", len(sum.TopTasks))
	}
	// AddTask前插，最新的在最前
	if sum.TopTasks[0].ID != "t5" {
		t.Fatalf("expected newest task first, got %s", sum.TopTasks[0].ID)
	}
	if sum.WeightedTotal != "87.60" {
		t.Fatalf("weighted total = %s", sum.WeightedTotal)
	}
	if sum.Quote == "" || sum.ExamDate == "" {
		t.Fatalf("summary missing fields: %+v", sum)
	}
}
