package model

import "testing"

func TestNextLessonStatus(t *testing.T) {
	cases := []struct {
		in   LessonStatus
		want LessonStatus
	}{
		{LessonPending, LessonReading},
		{LessonReading, LessonHomework},
		{LessonHomework, LessonReview},
		{LessonReview, LessonMastered},
		{LessonMastered, LessonPending}, // 回绕
		{"garbage", LessonReading},      // 未知状态视为pending
	}
	for _, c := range cases {
		if got := NextLessonStatus(c.in); got != c.want {
			t.Fatalf("NextLessonStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNextLessonStatusFullCycle(t *testing.T) {
	s := LessonPending
	for i := 0; i < len(LessonStatusOrder); i++ {
		s = NextLessonStatus(s)
	}
	if s != LessonPending {
		t.Fatalf("after %d advances expected pending, got %q", len(LessonStatusOrder), s)
	}
}

func TestCanonicalWeekDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Saturday", "Saturday"},
		{"sat", "Saturday"},
		{"SAT", "Saturday"},
		{"Fri", "Friday"},
		{"monday", "Monday"},
		{"Someday", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := CanonicalWeekDay(c.in); got != c.want {
			t.Fatalf("CanonicalWeekDay(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{"Low", "Medium", "High"} {
		if !ValidPriority(p) {
			t.Fatalf("ValidPriority(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"", "low", "URGENT", "medium"} {
		if ValidPriority(p) {
			t.Fatalf("ValidPriority(%q) = true, want false", p)
		}
	}
}
