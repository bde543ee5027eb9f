package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
	"thanawya_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestContainer(t *testing.T) *state.Container {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Document{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return state.NewContainer(store.NewStore(db, nil))
}

// clearCourses 清掉首次启动的示例课程，给需要精确数值的用例一张白纸
func clearCourses(t *testing.T, c *state.Container) {
	t.Helper()
	for _, course := range c.Courses() {
		c.DeleteCourse(course.ID)
	}
}

// clearTasks 同上，清掉示例任务
func clearTasks(t *testing.T, c *state.Container) {
	t.Helper()
	for _, task := range c.Tasks() {
		c.DeleteTask(task.ID)
	}
}

// fakeAI 可编程的AI替身。chatFn/planFn/parseFn非nil时优先生效，
// 用于在调用中途观察或改状态
type fakeAI struct {
	parseResult *model.ParsedTask
	parseErr    error
	chatReply   string
	chatErr     error
	planResult  []model.DailyPlan
	planErr     error

	parseFn func(input string, courseNames []string) (*model.ParsedTask, error)
	chatFn  func() (string, error)
	planFn  func(rows []model.PlanCourseInput) ([]model.DailyPlan, error)

	parseCalls int
	chatCalls  int
	planCalls  int
}

func (f *fakeAI) ParseTask(input string, courseNames []string) (*model.ParsedTask, error) {
	f.parseCalls++
	if f.parseFn != nil {
		return f.parseFn(input, courseNames)
	}
	return f.parseResult, f.parseErr
}

func (f *fakeAI) Chat(userMessage string, history []model.ChatMessage, snapshot *ContextSnapshot, imageDataURL string) (string, error) {
	f.chatCalls++
	if f.chatFn != nil {
		return f.chatFn()
	}
	return f.chatReply, f.chatErr
}

func (f *fakeAI) GeneratePlan(rows []model.PlanCourseInput) ([]model.DailyPlan, error) {
	f.planCalls++
	if f.planFn != nil {
		return f.planFn(rows)
	}
	return f.planResult, f.planErr
}
