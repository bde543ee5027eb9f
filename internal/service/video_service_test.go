package service

import (
	"testing"

	"thanawya_backend/internal/model"
)

func TestVideoTeachersCatalog(t *testing.T) {
	svc := NewVideoService()
	teachers := svc.Teachers()
	if len(teachers) == 0 {
		t.Fatalf("teacher catalog is empty")
	}
	for _, teacher := range teachers {
		if teacher.ID == "" || teacher.Name == "" || teacher.Subject == "" {
			t.Fatalf("malformed teacher: %+v", teacher)
		}
	}
}

func TestVideoLessonsNoFilter(t *testing.T) {
	svc := NewVideoService()
	if got := svc.Lessons("", "", ""); len(got) != len(videoLessons) {
		t.Fatalf("unfiltered list = %d lessons, want %d", len(got), len(videoLessons))
	}
}

func TestVideoLessonsTrackFilter(t *testing.T) {
	svc := NewVideoService()

	for _, l := range svc.Lessons(model.TrackArts, "", "") {
		if !lessonVisibleFor(l, model.TrackArts) {
			t.Fatalf("lesson %s leaked into arts track", l.ID)
		}
	}

	// common轨道的课对任何轨道都可见
	found := false
	for _, l := range svc.Lessons(model.TrackScience, "", "") {
		if l.Subject == "اللغة العربية" {
			found = true
		}
	}
	if !found {
		t.Fatalf("common-track lessons must be visible to science students")
	}
}

func TestVideoLessonsTeacherAndCategoryFilter(t *testing.T) {
	svc := NewVideoService()

	got := svc.Lessons("", "t1", model.VideoRevision)
	if len(got) == 0 {
		t.Fatalf("expected at least one revision lesson for t1")
	}
	for _, l := range got {
		if l.TeacherID != "t1" || l.Category != model.VideoRevision {
			t.Fatalf("filter leak: %+v", l)
		}
	}
}
