package model

type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceVideo ResourceType = "video"
	ResourceLink  ResourceType = "link"
	ResourceBook  ResourceType = "book"
)

type ResourceItem struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Type     ResourceType `json:"type"`
	URL      string       `json:"url,omitempty"`
	CourseID string       `json:"courseId,omitempty"`

	// 上传的视频资源经ffmpeg探测后记录的时长（秒），0表示未知
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
}
