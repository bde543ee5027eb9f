package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"thanawya_backend/internal/config"
	"thanawya_backend/internal/model"
	"thanawya_backend/internal/util"
	"thanawya_backend/pkg/monitoring"
)

// AIClient AI适配层的出站接口。三个操作各自走单一用途的窄提示词，
// 只有Chat带完整上下文快照和历史。所有实现都必须满足：
// 每次用户动作最多发起一次调用，没有自动重试
type AIClient interface {
	ParseTask(input string, courseNames []string) (*model.ParsedTask, error)
	Chat(userMessage string, history []model.ChatMessage, snapshot *ContextSnapshot, imageDataURL string) (string, error)
	GeneratePlan(rows []model.PlanCourseInput) ([]model.DailyPlan, error)
}

// ContextSnapshot 发给AI的学生状态快照（出站上下文）
type ContextSnapshot struct {
	UserProfile struct {
		Level   int `json:"level"`
		Mastery int `json:"mastery"`
		Streak  int `json:"streak"`
	} `json:"userProfile"`
	AcademicStatus []AcademicRow `json:"academicStatus"`
	PendingTasks   []PendingTask `json:"pendingTasks"`
	TodaysSchedule []string      `json:"todaysSchedule"`
	Resources      []string      `json:"resources"`
}

type AcademicRow struct {
	Subject          string  `json:"subject"`
	CurrentGrade     float64 `json:"currentGrade"`
	TargetGrade      float64 `json:"targetGrade"`
	Gap              float64 `json:"gap"`
	Difficulty       string  `json:"difficulty"`
	RemainingBacklog int     `json:"remainingBacklog"`
}

type PendingTask struct {
	Title    string `json:"title"`
	Due      string `json:"due"`
	Priority string `json:"priority"`
}

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type aiChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string 或 多模态parts数组
}

type contentPart struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	ImageURL *imageURLValue `json:"image_url,omitempty"`
}

type imageURLValue struct {
	URL string `json:"url"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// mentorPersona 固定的"الناصح الأمين"人设。要求：只说埃及口语、
// 直言不讳但带温度、基于数据分析而不是空聊
const mentorPersona = `You are the "Intelligent Mentor" (الناصح الأمين) for a High School student (Thanaweya Amma).

=== YOUR CORE PERSONA ===
1. **Honest & Direct (صريح)**: You do NOT lie, sugarcoat, or sycophant. If the student's grades are bad, say they are at risk politely but firmly. If they have accumulated tasks, warn them.
2. **Compassionate & Kind (عطوف)**: You care about their future. Your advice comes from love, not judgment. Be the "Big Brother".
3. **Analytical (محلل)**: You don't just chat; you analyze. Use the provided data to point out weaknesses.
4. **Language**: Egyptian Arabic (Masri) ONLY. Natural, friendly, but professional.

=== RESPONSE GUIDELINES ===
- Be concise. Don't write essays unless asked.
- No Markdown headers (#). Use bullet points if needed.
- If the student is doing well, praise them genuinely.
- If the student is slacking (low streak, many pending tasks), give them a "Reality Check" (فوق لنفسك) but kindly.`

var markdownControls = regexp.MustCompile("[*#_`]")

// StripMarkdown 去掉模型偶尔带出来的markdown控制符，纯文本展示
func StripMarkdown(s string) string {
	return strings.TrimSpace(markdownControls.ReplaceAllString(s, ""))
}

func (s *AIService) post(reqBody chatCompletionRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", util.ErrEmptyAIReply
	}
	return result.Choices[0].Message.Content, nil
}

// stripJSONFence 有些模型无视response_format还是包一层```json围栏
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// ParseTask 自然语言转任务。调用方失败时必须自己兜底成字面标题任务，
// 这里只负责"要么给出合法结构，要么报错"
func (s *AIService) ParseTask(input string, courseNames []string) (*model.ParsedTask, error) {
	if s.config.APIKey == "" {
		monitoring.AICallCounter.WithLabelValues("parse_task", "no_key").Inc()
		return nil, util.ErrMissingAPIKey
	}

	today := time.Now().Format(time.RFC3339)
	prompt := fmt.Sprintf(`Date: %s. Courses: [%s]. Input: "%s".
Extract task. Reply with a single JSON object {"title": string, "courseName": string (optional, must be one of the courses), "dueDate": string (ISO), "priority": "Low"|"Medium"|"High"}. ISO Date. Default Priority Medium.`,
		today, strings.Join(courseNames, ", "), input)

	text, err := s.post(chatCompletionRequest{
		Model: s.config.Model,
		Messages: []aiChatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		monitoring.AICallCounter.WithLabelValues("parse_task", "fallback").Inc()
		return nil, err
	}

	var parsed model.ParsedTask
	if err := json.Unmarshal([]byte(stripJSONFence(text)), &parsed); err != nil {
		monitoring.AICallCounter.WithLabelValues("parse_task", "fallback").Inc()
		return nil, err
	}

	// 必填字段校验：外部回包一律当不可信输入处理
	if parsed.Title == "" || !model.ValidPriority(parsed.Priority) {
		monitoring.AICallCounter.WithLabelValues("parse_task", "fallback").Inc()
		return nil, fmt.Errorf("parsed task missing required fields")
	}

	monitoring.AICallCounter.WithLabelValues("parse_task", "ok").Inc()
	return &parsed, nil
}

// Chat 带完整记忆和状态快照的对话。history是当前会话此前的所有轮次
func (s *AIService) Chat(userMessage string, history []model.ChatMessage, snapshot *ContextSnapshot, imageDataURL string) (string, error) {
	if s.config.APIKey == "" {
		monitoring.AICallCounter.WithLabelValues("chat", "no_key").Inc()
		return "", util.ErrMissingAPIKey
	}

	contextJSON, _ := json.MarshalIndent(snapshot, "", "  ")
	now := time.Now()
	systemPrompt := fmt.Sprintf("%s\n\n=== REAL-TIME CONTEXT ===\nDate: %s, Time: %s\nFULL STUDENT DATA: %s",
		mentorPersona,
		now.Format("Monday, 2 January 2006"),
		now.Format("15:04:05"),
		string(contextJSON),
	)

	messages := []aiChatMessage{
		{Role: "system", Content: systemPrompt},
	}

	// 注入历史轮次：多轮记忆的核心
	for _, h := range history {
		role := "user"
		if h.Role == model.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, aiChatMessage{Role: role, Content: h.Content})
	}

	// 当前这条消息，可选带一张内联图片
	if imageDataURL != "" {
		messages = append(messages, aiChatMessage{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: userMessage},
				{Type: "image_url", ImageURL: &imageURLValue{URL: imageDataURL}},
			},
		})
	} else {
		messages = append(messages, aiChatMessage{Role: "user", Content: userMessage})
	}

	temperature := s.config.Temperature
	if temperature == 0 {
		temperature = 0.6
	}

	text, err := s.post(chatCompletionRequest{
		Model:       s.config.Model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		monitoring.AICallCounter.WithLabelValues("chat", "fallback").Inc()
		return "", err
	}

	monitoring.AICallCounter.WithLabelValues("chat", "ok").Inc()
	return StripMarkdown(text), nil
}

// GeneratePlan 按各科StudyConfig生成一周补课计划。
// 回包的排序和合法性由backlog_service归一化
func (s *AIService) GeneratePlan(rows []model.PlanCourseInput) ([]model.DailyPlan, error) {
	if s.config.APIKey == "" {
		monitoring.AICallCounter.WithLabelValues("plan", "no_key").Inc()
		return nil, util.ErrMissingAPIKey
	}

	data, _ := json.Marshal(rows)
	prompt := fmt.Sprintf(`Create a 7-day study plan (Sat-Fri) for a High School student.
Data: %s
Rules: Prioritize lectures on fixed days. Fill gaps with backlogs.
Reply with a JSON object {"plan": [{"day": string, "totalHours": number, "tasks": [{"subject": string, "type": "Lecture"|"Backlog"|"Revision", "details": string, "duration": number}]}]} covering Saturday through Friday.`,
		string(data))

	text, err := s.post(chatCompletionRequest{
		Model: s.config.Model,
		Messages: []aiChatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		monitoring.AICallCounter.WithLabelValues("plan", "fallback").Inc()
		return nil, err
	}

	cleaned := stripJSONFence(text)

	var wrapped struct {
		Plan []model.DailyPlan `json:"plan"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Plan) > 0 {
		monitoring.AICallCounter.WithLabelValues("plan", "ok").Inc()
		return wrapped.Plan, nil
	}

	// 有的模型直接回裸数组
	var plain []model.DailyPlan
	if err := json.Unmarshal([]byte(cleaned), &plain); err != nil {
		monitoring.AICallCounter.WithLabelValues("plan", "fallback").Inc()
		return nil, err
	}

	monitoring.AICallCounter.WithLabelValues("plan", "ok").Inc()
	return plain, nil
}
