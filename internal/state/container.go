package state

import (
	"sort"
	"sync"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/store"
)

// Container 进程内唯一的应用状态持有者，启动时构造一次并注入各服务，
// 没有包级可变状态。每个集合绑定一个存储key；所有变更先改内存、
// 再把整个集合覆盖写回store（写失败静默，内存值仍然权威）。
//
// 浏览器版跑在单线程事件循环上不需要锁；Go版并发处理HTTP请求，
// 所以集合由一把互斥锁保护
type Container struct {
	mu    sync.Mutex
	store *store.Store

	tasks     []model.Task
	courses   []model.Course
	schedule  []model.ScheduleBlock
	resources []model.ResourceItem
	stats     model.UserStats
	chat      []model.ChatSession
}

func NewContainer(st *store.Store) *Container {
	c := &Container{store: st}

	c.tasks = store.Load(st, store.KeyTasks, model.DefaultTasks())
	c.courses = store.Load(st, store.KeyCourses, model.DefaultCourses())
	c.schedule = store.Load(st, store.KeySchedule, model.DefaultSchedule())
	c.resources = store.Load(st, store.KeyResources, []model.ResourceItem{})
	c.stats = store.Load(st, store.KeyStats, model.DefaultStats())
	c.chat = store.Load(st, store.KeyChatHistory, []model.ChatSession{})

	return c
}

// Flush 把全部集合写穿一遍，进程退出前调用
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Save(store.KeyTasks, c.tasks)
	c.store.Save(store.KeyCourses, c.courses)
	c.store.Save(store.KeySchedule, c.schedule)
	c.store.Save(store.KeyResources, c.resources)
	c.store.Save(store.KeyStats, c.stats)
	c.store.Save(store.KeyChatHistory, c.chat)
}

// --- Tasks ---

func (c *Container) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// AddTask 新任务插到最前面（最新优先）
func (c *Container) AddTask(t model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append([]model.Task{t}, c.tasks...)
	c.store.Save(store.KeyTasks, c.tasks)
}

// UpdateTask 按id替换，找不到时不做任何事并返回false
func (c *Container) UpdateTask(t model.Task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			c.store.Save(store.KeyTasks, c.tasks)
			return true
		}
	}
	return false
}

func (c *Container) DeleteTask(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			c.store.Save(store.KeyTasks, c.tasks)
			return
		}
	}
}

// ToggleTask 翻转完成标记，返回翻转后的任务
func (c *Container) ToggleTask(id string) (model.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].IsCompleted = !c.tasks[i].IsCompleted
			c.store.Save(store.KeyTasks, c.tasks)
			return c.tasks[i], true
		}
	}
	return model.Task{}, false
}

// --- Courses ---

// Courses 交出深拷贝。课程带嵌套的单元/课时切片，浅拷贝会让
// 调用方和容器共享底层数组，服务层的读改写就会绕开这把锁
func (c *Container) Courses() []model.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = course.Clone()
	}
	return out
}

// AddCourse 课程按创建顺序追加。入参同样克隆，调用方之后
// 再改手里的结构不会影响容器
func (c *Container) AddCourse(course model.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.courses = append(c.courses, course.Clone())
	c.store.Save(store.KeyCourses, c.courses)
}

func (c *Container) UpdateCourse(course model.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.courses {
		if c.courses[i].ID == course.ID {
			c.courses[i] = course.Clone()
			c.store.Save(store.KeyCourses, c.courses)
			return
		}
	}
}

// DeleteCourse 课程独占其单元，删除课程连带删除全部单元和课时
func (c *Container) DeleteCourse(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.courses {
		if c.courses[i].ID == id {
			c.courses = append(c.courses[:i], c.courses[i+1:]...)
			c.store.Save(store.KeyCourses, c.courses)
			return
		}
	}
}

// --- Schedule ---

func (c *Container) Schedule() []model.ScheduleBlock {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.ScheduleBlock, len(c.schedule))
	copy(out, c.schedule)
	return out
}

func (c *Container) AddBlock(b model.ScheduleBlock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedule = append(c.schedule, b)
	c.store.Save(store.KeySchedule, c.schedule)
}

func (c *Container) DeleteBlock(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.schedule {
		if c.schedule[i].ID == id {
			c.schedule = append(c.schedule[:i], c.schedule[i+1:]...)
			c.store.Save(store.KeySchedule, c.schedule)
			return
		}
	}
}

// --- Resources ---

func (c *Container) Resources() []model.ResourceItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.ResourceItem, len(c.resources))
	copy(out, c.resources)
	return out
}

func (c *Container) AddResource(r model.ResourceItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, r)
	c.store.Save(store.KeyResources, c.resources)
}

func (c *Container) DeleteResource(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.resources {
		if c.resources[i].ID == id {
			c.resources = append(c.resources[:i], c.resources[i+1:]...)
			c.store.Save(store.KeyResources, c.resources)
			return
		}
	}
}

// --- Stats ---

func (c *Container) Stats() model.UserStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// MutateStats 在锁内应用变更函数并持久化
func (c *Container) MutateStats(fn func(*model.UserStats)) model.UserStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.stats)
	c.store.Save(store.KeyStats, c.stats)
	return c.stats
}

// --- Chat history ---

// ChatSessions 交出深拷贝，理由同Courses：Messages切片不能外漏
func (c *Container) ChatSessions() []model.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.ChatSession, len(c.chat))
	for i, s := range c.chat {
		out[i] = s.Clone()
	}
	return out
}

// UpsertSession id命中则替换，否则插到最前；随后按lastModified降序
// 重排——这是历史列表不变量，任何保存之后都必须成立
func (c *Container) UpsertSession(s model.ChatSession) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s = s.Clone()
	replaced := false
	for i := range c.chat {
		if c.chat[i].ID == s.ID {
			c.chat[i] = s
			replaced = true
			break
		}
	}
	if !replaced {
		c.chat = append([]model.ChatSession{s}, c.chat...)
	}

	sort.SliceStable(c.chat, func(i, j int) bool {
		return c.chat[i].LastModified > c.chat[j].LastModified
	})
	c.store.Save(store.KeyChatHistory, c.chat)
}

func (c *Container) DeleteSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.chat {
		if c.chat[i].ID == id {
			c.chat = append(c.chat[:i], c.chat[i+1:]...)
			c.store.Save(store.KeyChatHistory, c.chat)
			return
		}
	}
}

// --- 任意文档的直通读写（集合之外的缓存类key用） ---

func (c *Container) LoadDoc(key string, dest interface{}) bool {
	return c.store.Load(key, dest)
}

func (c *Container) SaveDoc(key string, value interface{}) {
	c.store.Save(key, value)
}

// --- 独立偏好值 ---

func (c *Container) Pref(key, def string) string {
	return store.Load(c.store, key, def)
}

func (c *Container) SetPref(key, value string) {
	c.store.Save(key, value)
}

func (c *Container) ClearPref(key string) {
	c.store.Delete(key)
}
