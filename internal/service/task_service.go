package service

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
	"thanawya_backend/pkg/logger"
)

// TaskService 任务管理：增删改查、完成翻转、自然语言智能添加
type TaskService struct {
	container *state.Container
	ai        AIClient
	stats     *StatsService
}

func NewTaskService(container *state.Container, ai AIClient, stats *StatsService) *TaskService {
	return &TaskService{container: container, ai: ai, stats: stats}
}

func (s *TaskService) List() []model.Task {
	return s.container.Tasks()
}

func (s *TaskService) Create(title, description, courseID string, priority model.Priority, dueDate time.Time) model.Task {
	if !model.ValidPriority(string(priority)) {
		priority = model.PriorityMedium
	}
	if dueDate.IsZero() {
		dueDate = time.Now()
	}
	task := model.Task{
		ID:          model.GenerateID(),
		Title:       title,
		Description: description,
		CourseID:    courseID,
		DueDate:     dueDate,
		IsCompleted: false,
		Priority:    priority,
	}
	s.container.AddTask(task)
	return task
}

func (s *TaskService) Update(task model.Task) (model.Task, error) {
	if !model.ValidPriority(string(task.Priority)) {
		task.Priority = model.PriorityMedium
	}
	if !s.container.UpdateTask(task) {
		return model.Task{}, util.ErrTaskNotFound
	}
	return task, nil
}

// Delete 幂等删除，不存在也算成功
func (s *TaskService) Delete(id string) {
	s.container.DeleteTask(id)
}

// Toggle 翻转完成态并结算积分
func (s *TaskService) Toggle(id string) (model.Task, error) {
	task, ok := s.container.ToggleTask(id)
	if !ok {
		return model.Task{}, util.ErrTaskNotFound
	}
	s.stats.OnTaskToggled(task.IsCompleted)
	return task, nil
}

// SmartAdd 自然语言建任务。AI解析失败时降级为字面任务：
// 标题=原始输入、优先级Medium、截止=现在。输入永远不会丢
func (s *TaskService) SmartAdd(input string) model.Task {
	courses := s.container.Courses()
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}

	parsed, err := s.ai.ParseTask(input, names)
	if err != nil {
		logger.Log.Warn("AI解析任务失败，降级为字面任务", zap.Error(err))
		return s.Create(input, "", "", model.PriorityMedium, time.Now())
	}

	courseID := ""
	if parsed.CourseName != "" {
		for _, c := range courses {
			if strings.EqualFold(c.Name, parsed.CourseName) {
				courseID = c.ID
				break
			}
		}
	}

	due := time.Now()
	if parsed.DueDate != "" {
		if t, err := time.Parse(time.RFC3339, parsed.DueDate); err == nil {
			due = t
		} else if t, err := time.Parse("2006-01-02", parsed.DueDate); err == nil {
			due = t
		}
	}

	return s.Create(parsed.Title, "", courseID, model.Priority(parsed.Priority), due)
}

// CompletionRate 已完成占比（四舍五入到整数百分比），空列表为0
func (s *TaskService) CompletionRate() int {
	tasks := s.container.Tasks()
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

// Pending 未完成任务，喂给AI上下文快照用
func (s *TaskService) Pending() []model.Task {
	tasks := s.container.Tasks()
	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted {
			pending = append(pending, t)
		}
	}
	return pending
}
