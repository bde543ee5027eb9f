package service

import (
	"testing"

	"thanawya_backend/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestWeightedTotalSeedCourses(t *testing.T) {
	// 示例课程：(82×5 + 92×6 + 88×4) / 15 = 87.6
	c := newTestContainer(t)
	p := NewPredictorService(c)

	if got := FormatTotal(p.WeightedTotal(false)); got != "87.60" {
		t.Fatalf("weighted total = %s, want 87.60", got)
	}
}

func TestWeightedTotalEmpty(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	p := NewPredictorService(c)

	if got := p.WeightedTotal(false); got != 0 {
		t.Fatalf("weighted total of no courses = %f, want 0", got)
	}
}

func TestWeightedTotalTargetFallback(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1, TargetGrade: fp(90)})
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1, CurrentGrade: fp(70)}) // 无目标分，退回当前分
	c.AddCourse(model.Course{ID: "c", Name: "C", Credits: 1})                       // 两者皆无，按0
	p := NewPredictorService(c)

	// (90 + 70 + 0) / 3
	if got := p.WeightedTotal(true); got < 53.33 || got > 53.34 {
		t.Fatalf("target total = %f, want ~53.33", got)
	}
}

func TestBiggestGap(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1, CurrentGrade: fp(80), TargetGrade: fp(85)})
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1, CurrentGrade: fp(60), TargetGrade: fp(90)})
	c.AddCourse(model.Course{ID: "c", Name: "C", Credits: 1, CurrentGrade: fp(50), TargetGrade: fp(80)})
	p := NewPredictorService(c)

	got := p.BiggestGap()
	if got == nil || got.ID != "b" {
		t.Fatalf("biggest gap = %+v, want course b", got)
	}
}

func TestBiggestGapTieTakesFirst(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1, CurrentGrade: fp(70), TargetGrade: fp(90)})
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1, CurrentGrade: fp(60), TargetGrade: fp(80)})
	p := NewPredictorService(c)

	got := p.BiggestGap()
	if got == nil || got.ID != "a" {
		t.Fatalf("tie should take the first course, got %+v", got)
	}
}

func TestBiggestGapRequiresPositiveGap(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1, CurrentGrade: fp(95), TargetGrade: fp(90)})
	c.AddCourse(model.Course{ID: "b", Name: "B", Credits: 1, CurrentGrade: fp(88), TargetGrade: fp(88)})
	p := NewPredictorService(c)

	if got := p.BiggestGap(); got != nil {
		t.Fatalf("no positive gap should return nil, got %+v", got)
	}
}

func TestUpdateGradesClamps(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1})
	p := NewPredictorService(c)

	got, err := p.UpdateGrades("a", fp(120), fp(-3))
	if err != nil {
		t.Fatalf("UpdateGrades: %v", err)
	}
	if *got.CurrentGrade != 100 || *got.TargetGrade != 0 {
		t.Fatalf("clamp failed: current=%f target=%f", *got.CurrentGrade, *got.TargetGrade)
	}
}

func TestUpdateGradesUnknownCourse(t *testing.T) {
	c := newTestContainer(t)
	p := NewPredictorService(c)

	if _, err := p.UpdateGrades("ghost", fp(50), nil); err == nil {
		t.Fatalf("expected error for unknown course")
	}
}

func TestSimulateImprovement(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "عالي", Credits: 1, CurrentGrade: fp(90)})
	c.AddCourse(model.Course{ID: "b", Name: "واطي", Credits: 1, CurrentGrade: fp(50)})
	p := NewPredictorService(c)

	res := p.SimulateImprovement()
	if res == nil {
		t.Fatalf("expected a simulation result")
	}
	if res.Subject != "واطي" {
		t.Fatalf("should bump the lowest course, got %q", res.Subject)
	}
	if res.Before != 70 || res.After != 72.5 {
		t.Fatalf("before=%f after=%f, want 70 / 72.5", res.Before, res.After)
	}

	// 纯推演，真实分数不得改变
	for _, course := range c.Courses() {
		if course.ID == "b" && *course.CurrentGrade != 50 {
			t.Fatalf("simulation mutated stored grade: %f", *course.CurrentGrade)
		}
	}
}

func TestSimulateImprovementCapsAt100(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	c.AddCourse(model.Course{ID: "a", Name: "A", Credits: 1, CurrentGrade: fp(98)})
	p := NewPredictorService(c)

	res := p.SimulateImprovement()
	if res == nil || res.After != 100 {
		t.Fatalf("expected capped after=100, got %+v", res)
	}
}

func TestSimulateImprovementNoCourses(t *testing.T) {
	c := newTestContainer(t)
	clearCourses(t, c)
	p := NewPredictorService(c)

	if res := p.SimulateImprovement(); res != nil {
		t.Fatalf("expected nil result with no courses, got %+v", res)
	}
}
