package service

import (
	"errors"
	"testing"

	"thanawya_backend/internal/model"
)

func TestSubjectsPerTrack(t *testing.T) {
	cases := []struct {
		name     string
		track    string
		subTrack string
		want     int
		contains string
	}{
		{"no track picked", "", "", 3, "اللغة العربية"},
		{"arts", "arts", "", 7, "الفلسفة والمنطق"},
		{"sci science", "sci", "science", 7, "الأحياء"},
		{"sci math", "sci", "math", 7, "الرياضيات البحتة (تفاضل/جبر)"},
		{"sci missing subtrack defaults to math", "sci", "", 7, "الرياضيات التطبيقية (استاتيكا/ديناميكا)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewBacklogService(newTestContainer(t), &fakeAI{})
			if c.track != "" {
				svc.SetTrack(c.track, c.subTrack)
			}

			subjects := svc.Subjects()
			if len(subjects) != c.want {
				t.Fatalf("got %d subjects, want %d", len(subjects), c.want)
			}
			found := false
			for _, s := range subjects {
				if s.Name == c.contains {
					found = true
				}
			}
			if !found {
				t.Fatalf("subject %q missing from %s list", c.contains, c.name)
			}
		})
	}
}

func TestResetTrack(t *testing.T) {
	svc := NewBacklogService(newTestContainer(t), &fakeAI{})
	svc.SetTrack("sci", "science")
	svc.ResetTrack()

	track, subTrack := svc.Track()
	if track != "" || subTrack != "" {
		t.Fatalf("after reset: track=%q subTrack=%q", track, subTrack)
	}
}

func TestSaveConfigCreatesCourse(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	svc := NewBacklogService(c, &fakeAI{})

	cfg := model.StudyConfig{BacklogType: model.BacklogChapter, BacklogCount: 3}
	course := svc.SaveConfig("التاريخ", "#ef4444", cfg)

	if course.Credits != 4 || course.Difficulty != model.DifficultyMedium {
		t.Fatalf("auto-created course defaults wrong: %+v", course)
	}
	if course.CurrentGrade == nil || *course.CurrentGrade != 0 {
		t.Fatalf("auto-created course should start at grade 0")
	}
	if course.StudyConfig == nil || course.StudyConfig.BacklogCount != 3 {
		t.Fatalf("study config not attached: %+v", course.StudyConfig)
	}
	if len(c.Courses()) != 1 {
		t.Fatalf("expected exactly one course")
	}
}

func TestSaveConfigUpdatesExistingCourse(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "hist", Name: "التاريخ", Credits: 6})
	svc := NewBacklogService(c, &fakeAI{})

	course := svc.SaveConfig("التاريخ", "#ef4444", model.StudyConfig{BacklogCount: 5})
	if course.ID != "hist" || course.Credits != 6 {
		t.Fatalf("existing course should be reused, got %+v", course)
	}
	if svc.BacklogTotal() != 5 {
		t.Fatalf("backlog total = %d, want 5", svc.BacklogTotal())
	}
}

func TestGeneratePlanSkipsIdleCourses(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	// 三门课：无配置 / 有积压 / 只有固定课日
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1})
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1,
		StudyConfig: &model.StudyConfig{BacklogCount: 2}})
	c.AddCourse(model.Course{ID: "c", Name: "C", Credits: 1,
		StudyConfig: &model.StudyConfig{LectureDays: []string{"Monday"}}})

	ai := &fakeAI{planFn: func(rows []model.PlanCourseInput) ([]model.DailyPlan, error) {
		if len(rows) != 2 {
			t.Fatalf("expected 2 plan rows, got %d", len(rows))
		}
		return []model.DailyPlan{{Day: "Saturday"}}, nil
	}}
	svc := NewBacklogService(c, ai)

	svc.GeneratePlan()
	if ai.planCalls != 1 {
		t.Fatalf("plan not requested")
	}
}

func TestGeneratePlanNoRows(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	ai := &fakeAI{}
	svc := NewBacklogService(c, ai)

	plan := svc.GeneratePlan()
	if plan == nil || len(plan) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
	if ai.planCalls != 0 {
		t.Fatalf("AI must not be called with nothing to schedule")
	}
}

func TestGeneratePlanAIFailure(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1,
		StudyConfig: &model.StudyConfig{BacklogCount: 2}})
	svc := NewBacklogService(c, &fakeAI{planErr: errors.New("boom")})

	plan := svc.GeneratePlan()
	if len(plan) != 0 {
		t.Fatalf("AI failure should yield empty plan, got %+v", plan)
	}
}

func TestNormalizePlan(t *testing.T) {
	in := []model.DailyPlan{
		{Day: "mon", TotalHours: 2, Tasks: []model.PlanTask{{Subject: "A"}}},
		{Day: "Saturday", TotalHours: 3, Tasks: []model.PlanTask{{Subject: "B"}}},
		{Day: "Blursday", TotalHours: 1}, // 认不出的天名要丢
		{Day: "Monday", TotalHours: 1, Tasks: []model.PlanTask{{Subject: "C"}}}, // 与mon合并
	}

	out := normalizePlan(in)
	if len(out) != 7 {
		t.Fatalf("normalized plan has %d days, want 7", len(out))
	}
	if out[0].Day != "Saturday" || out[6].Day != "Friday" {
		t.Fatalf("week must run Saturday→Friday, got %s..%s", out[0].Day, out[6].Day)
	}

	var monday model.DailyPlan
	for _, d := range out {
		if d.Day == "Monday" {
			monday = d
		}
	}
	if len(monday.Tasks) != 2 || monday.TotalHours != 3 {
		t.Fatalf("duplicate day not merged: %+v", monday)
	}

	// 模型漏掉的天补成合法的空行
	for _, d := range out {
		if d.Day == "Tuesday" {
			if d.Tasks == nil || len(d.Tasks) != 0 {
				t.Fatalf("missing day should be an empty rest day: %+v", d)
			}
		}
	}
}
