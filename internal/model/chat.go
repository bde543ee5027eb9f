package model

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string   `json:"id"`
	Role      ChatRole `json:"role"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"` // epoch毫秒
}

// ChatSession 历史列表唯一的排序键是LastModified（降序，最新在前）
type ChatSession struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"` // 取首条用户消息截断
	Messages     []ChatMessage `json:"messages"`
	LastModified int64         `json:"lastModified"` // epoch毫秒
}

// Clone 深拷贝消息切片，见Course.Clone
func (s ChatSession) Clone() ChatSession {
	out := s
	if s.Messages != nil {
		out.Messages = append([]ChatMessage(nil), s.Messages...)
	}
	return out
}
