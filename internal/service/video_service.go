package service

import (
	"thanawya_backend/internal/model"
)

// 内置讲师与课程目录。视频库是只读内容，不进documents存储
var videoTeachers = []model.VideoTeacher{
	{ID: "t1", Name: "أ. محمد عبد المعبود", Subject: "الفيزياء"},
	{ID: "t2", Name: "أ. محمد الشافعي", Subject: "الكيمياء"},
	{ID: "t3", Name: "أ. أحمد سمير", Subject: "الرياضيات البحتة"},
	{ID: "t4", Name: "أ. خالد صقر", Subject: "الأحياء"},
	{ID: "t5", Name: "أ. رضا الفاروق", Subject: "اللغة العربية"},
	{ID: "t6", Name: "Mr. Ibrahim Abdel Massih", Subject: "اللغة الإنجليزية"},
	{ID: "t7", Name: "أ. محمد حافظ", Subject: "التاريخ"},
}

var videoLessons = []model.VideoLesson{
	{ID: "v1", Title: "مقدمة التيار الكهربي - الباب الأول", TeacherID: "t1", TeacherName: "أ. محمد عبد المعبود", Subject: "الفيزياء", Category: model.VideoExplanation, YoutubeID: "dQw4w9WgXcQ", Duration: "45:20", Tracks: []model.SubjectTrack{model.TrackScience, model.TrackMath}},
	{ID: "v2", Title: "قانون أوم ومسائل محلولة", TeacherID: "t1", TeacherName: "أ. محمد عبد المعبود", Subject: "الفيزياء", Category: model.VideoExplanation, YoutubeID: "9bZkp7q19f0", Duration: "52:10", Tracks: []model.SubjectTrack{model.TrackScience, model.TrackMath}},
	{ID: "v3", Title: "مراجعة ليلة الامتحان - كهربية", TeacherID: "t1", TeacherName: "أ. محمد عبد المعبود", Subject: "الفيزياء", Category: model.VideoRevision, YoutubeID: "3JZ_D3ELwOQ", Duration: "1:30:00", Tracks: []model.SubjectTrack{model.TrackScience, model.TrackMath}},
	{ID: "v4", Title: "العناصر الانتقالية - شرح شامل", TeacherID: "t2", TeacherName: "أ. محمد الشافعي", Subject: "الكيمياء", Category: model.VideoExplanation, YoutubeID: "kJQP7kiw5Fk", Duration: "58:45", Tracks: []model.SubjectTrack{model.TrackScience, model.TrackMath}},
	{ID: "v5", Title: "حل امتحان الكيمياء 2025", TeacherID: "t2", TeacherName: "أ. محمد الشافعي", Subject: "الكيمياء", Category: model.VideoExam, YoutubeID: "fJ9rUzIMcZQ", Duration: "1:15:30", Tracks: []model.SubjectTrack{model.TrackScience, model.TrackMath}},
	{ID: "v6", Title: "التفاضل - قواعد الاشتقاق", TeacherID: "t3", TeacherName: "أ. أحمد سمير", Subject: "الرياضيات البحتة", Category: model.VideoExplanation, YoutubeID: "L_jWHffIx5E", Duration: "49:00", Tracks: []model.SubjectTrack{model.TrackMath}},
	{ID: "v7", Title: "التكامل المحدود وتطبيقاته", TeacherID: "t3", TeacherName: "أ. أحمد سمير", Subject: "الرياضيات البحتة", Category: model.VideoExplanation, YoutubeID: "OPf0YbXqDm0", Duration: "55:30", Tracks: []model.SubjectTrack{model.TrackMath}},
	{ID: "v8", Title: "DNA والمعلومة الوراثية", TeacherID: "t4", TeacherName: "أ. خالد صقر", Subject: "الأحياء", Category: model.VideoExplanation, YoutubeID: "YQHsXMglC9A", Duration: "42:15", Tracks: []model.SubjectTrack{model.TrackScience}},
	{ID: "v9", Title: "مراجعة الدعامة والحركة", TeacherID: "t4", TeacherName: "أ. خالد صقر", Subject: "الأحياء", Category: model.VideoRevision, YoutubeID: "CevxZvSJLk8", Duration: "1:05:00", Tracks: []model.SubjectTrack{model.TrackScience}},
	{ID: "v10", Title: "النحو - إن وأخواتها", TeacherID: "t5", TeacherName: "أ. رضا الفاروق", Subject: "اللغة العربية", Category: model.VideoExplanation, YoutubeID: "hT_nvWreIhg", Duration: "38:40", Tracks: []model.SubjectTrack{model.TrackCommon}},
	{ID: "v11", Title: "البلاغة - مراجعة نهائية", TeacherID: "t5", TeacherName: "أ. رضا الفاروق", Subject: "اللغة العربية", Category: model.VideoRevision, YoutubeID: "RgKAFK5djSk", Duration: "50:20", Tracks: []model.SubjectTrack{model.TrackCommon}},
	{ID: "v12", Title: "Unit 1: Grammar - Present Perfect", TeacherID: "t6", TeacherName: "Mr. Ibrahim Abdel Massih", Subject: "اللغة الإنجليزية", Category: model.VideoExplanation, YoutubeID: "JGwWNGJdvx8", Duration: "35:10", Tracks: []model.SubjectTrack{model.TrackCommon}},
	{ID: "v13", Title: "حل امتحان اللغة الإنجليزية 2025", TeacherID: "t6", TeacherName: "Mr. Ibrahim Abdel Massih", Subject: "اللغة الإنجليزية", Category: model.VideoExam, YoutubeID: "SlPhMPnQ58k", Duration: "1:10:00", Tracks: []model.SubjectTrack{model.TrackCommon}},
	{ID: "v14", Title: "الحملة الفرنسية على مصر", TeacherID: "t7", TeacherName: "أ. محمد حافظ", Subject: "التاريخ", Category: model.VideoExplanation, YoutubeID: "60ItHLz5WEA", Duration: "47:25", Tracks: []model.SubjectTrack{model.TrackArts}},
	{ID: "v15", Title: "مراجعة ثورة 1919", TeacherID: "t7", TeacherName: "أ. محمد حافظ", Subject: "التاريخ", Category: model.VideoRevision, YoutubeID: "lp-EO5I60KA", Duration: "55:50", Tracks: []model.SubjectTrack{model.TrackArts}},
}

// VideoService 视频课程库的只读查询
type VideoService struct{}

func NewVideoService() *VideoService {
	return &VideoService{}
}

func (s *VideoService) Teachers() []model.VideoTeacher {
	return videoTeachers
}

// Lessons 按轨道/讲师/分类过滤，空参数表示不过滤。
// common轨道的课对任何轨道筛选都可见
func (s *VideoService) Lessons(track model.SubjectTrack, teacherID string, category model.VideoCategory) []model.VideoLesson {
	out := []model.VideoLesson{}
	for _, l := range videoLessons {
		if track != "" && !lessonVisibleFor(l, track) {
			continue
		}
		if teacherID != "" && l.TeacherID != teacherID {
			continue
		}
		if category != "" && l.Category != category {
			continue
		}
		out = append(out, l)
	}
	return out
}

func lessonVisibleFor(l model.VideoLesson, track model.SubjectTrack) bool {
	for _, t := range l.Tracks {
		if t == track || t == model.TrackCommon {
			return true
		}
	}
	return false
}
