package model

type VideoCategory string

const (
	VideoExplanation VideoCategory = "explanation"
	VideoRevision    VideoCategory = "revision"
	VideoExam        VideoCategory = "exam"
)

// SubjectTrack 学科分流：文科/理科（理科再分科学/数学方向），common对所有人可见
type SubjectTrack string

const (
	TrackCommon  SubjectTrack = "common"
	TrackScience SubjectTrack = "science"
	TrackMath    SubjectTrack = "math"
	TrackArts    SubjectTrack = "arts"
)

type VideoTeacher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Image   string `json:"image,omitempty"`
}

type VideoLesson struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	TeacherID   string         `json:"teacherId"`
	TeacherName string         `json:"teacherName"`
	Subject     string         `json:"subject"`
	Category    VideoCategory  `json:"category"`
	YoutubeID   string         `json:"youtubeId"`
	Duration    string         `json:"duration"`
	Tracks      []SubjectTrack `json:"track"`
}
