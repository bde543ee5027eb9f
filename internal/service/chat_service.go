package service

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
	"thanawya_backend/pkg/logger"
)

// 面向学生的固定回复文案，AI出问题时永远有话可说
const (
	replyMissingKey   = "عذراً، المفتاح الخاص بـ AI غير موجود."
	replyEmptyReply   = "مش قادر أرد دلوقتي، في مشكلة تقنية."
	replyConnectError = "فيه مشكلة في الاتصال، جرب كمان شوية."
	defaultChatTitle  = "محادثة جديدة"
)

const titleMaxRunes = 25

// ChatService 多轮对话：会话管理、带快照的AI调用、过期回包丢弃
type ChatService struct {
	container *state.Container
	ai        AIClient
	tasks     *TaskService
	stats     *StatsService

	mu  sync.Mutex
	seq map[string]uint64 // sessionID → 最近一次发送的序号
}

func NewChatService(container *state.Container, ai AIClient, tasks *TaskService, stats *StatsService) *ChatService {
	return &ChatService{
		container: container,
		ai:        ai,
		tasks:     tasks,
		stats:     stats,
		seq:       make(map[string]uint64),
	}
}

func (s *ChatService) Sessions() []model.ChatSession {
	return s.container.ChatSessions()
}

func (s *ChatService) Session(id string) (model.ChatSession, error) {
	for _, sess := range s.container.ChatSessions() {
		if sess.ID == id {
			return sess, nil
		}
	}
	return model.ChatSession{}, util.ErrSessionNotFound
}

// NewSession 会话id用epoch毫秒字符串，与历史存档的id形态一致
func (s *ChatService) NewSession() model.ChatSession {
	now := time.Now().UnixMilli()
	sess := model.ChatSession{
		ID:           strconv.FormatInt(now, 10),
		Title:        defaultChatTitle,
		Messages:     []model.ChatMessage{},
		LastModified: now,
	}
	s.container.UpsertSession(sess)
	return sess
}

func (s *ChatService) DeleteSession(id string) {
	s.container.DeleteSession(id)
	s.mu.Lock()
	delete(s.seq, id)
	s.mu.Unlock()
}

// titleFromFirstMessage 首条用户消息截断到25个字符再加省略号
func titleFromFirstMessage(content string) string {
	runes := []rune(content)
	if len(runes) == 0 {
		return defaultChatTitle
	}
	if len(runes) <= titleMaxRunes {
		return content
	}
	return string(runes[:titleMaxRunes]) + "..."
}

// snapshot 攒出发给AI的学生状态快照
func (s *ChatService) snapshot() *ContextSnapshot {
	snap := &ContextSnapshot{}

	st := s.stats.Stats()
	snap.UserProfile.Level = st.Level
	snap.UserProfile.Mastery = st.MasteryScore
	snap.UserProfile.Streak = st.StreakDays

	for _, c := range s.container.Courses() {
		current, target := 0.0, 100.0
		if c.CurrentGrade != nil {
			current = *c.CurrentGrade
		}
		if c.TargetGrade != nil {
			target = *c.TargetGrade
		}
		backlog := 0
		if c.StudyConfig != nil {
			backlog = c.StudyConfig.BacklogCount
		}
		snap.AcademicStatus = append(snap.AcademicStatus, AcademicRow{
			Subject:          c.Name,
			CurrentGrade:     current,
			TargetGrade:      target,
			Gap:              target - current,
			Difficulty:       string(c.Difficulty),
			RemainingBacklog: backlog,
		})
	}

	for _, t := range s.tasks.Pending() {
		snap.PendingTasks = append(snap.PendingTasks, PendingTask{
			Title:    t.Title,
			Due:      t.DueDate.Format("2006-01-02"),
			Priority: string(t.Priority),
		})
	}

	for _, b := range s.container.Schedule() {
		snap.TodaysSchedule = append(snap.TodaysSchedule,
			fmt.Sprintf("%s: %s (%s)", b.StartTime, b.Title, b.Type))
	}

	for _, r := range s.container.Resources() {
		snap.Resources = append(snap.Resources, r.Title)
	}

	return snap
}

func (s *ChatService) nextSeq(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[sessionID]++
	return s.seq[sessionID]
}

func (s *ChatService) isCurrentSeq(sessionID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[sessionID] == seq
}

// Send 往会话里追加一条用户消息并取AI回复。
// AI调用期间会话可能被删或又发了新消息，靠序号判定回包是否还算数；
// 过期回包直接丢弃不落库
func (s *ChatService) Send(sessionID, content, imageDataURL string) (model.ChatSession, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return model.ChatSession{}, err
	}

	now := time.Now().UnixMilli()
	userMsg := model.ChatMessage{
		ID:        model.GenerateID(),
		Role:      model.RoleUser,
		Content:   content,
		Timestamp: now,
	}

	history := sess.Messages
	sess.Messages = append(sess.Messages, userMsg)
	if len(history) == 0 {
		sess.Title = titleFromFirstMessage(content)
	}
	sess.LastModified = now
	s.container.UpsertSession(sess)

	seq := s.nextSeq(sessionID)

	reply, err := s.ai.Chat(content, history, s.snapshot(), imageDataURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingAPIKey):
			reply = replyMissingKey
		case errors.Is(err, util.ErrEmptyAIReply):
			reply = replyEmptyReply
		default:
			logger.Log.Warn("AI对话调用失败", zap.Error(err))
			reply = replyConnectError
		}
	}
	if reply == "" {
		reply = replyEmptyReply
	}

	if !s.isCurrentSeq(sessionID, seq) {
		return model.ChatSession{}, util.ErrStaleResponse
	}

	// 重新读会话：等待期间可能被删掉了
	sess, err = s.Session(sessionID)
	if err != nil {
		return model.ChatSession{}, util.ErrStaleResponse
	}

	sess.Messages = append(sess.Messages, model.ChatMessage{
		ID:        model.GenerateID(),
		Role:      model.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UnixMilli(),
	})
	sess.LastModified = time.Now().UnixMilli()
	s.container.UpsertSession(sess)
	return sess, nil
}
