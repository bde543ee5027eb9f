package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// TaskController 处理任务相关的API请求
type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// List godoc
// @Summary 任务列表
// @Description 全部任务，最新创建的在前
// @Tags 任务管理
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/v1/tasks [get]
func (c *TaskController) List(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"tasks":          c.TaskService.List(),
		"completionRate": c.TaskService.CompletionRate(),
	})
}

// CreateTaskRequest 手动建任务请求
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CourseID    string `json:"courseId"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
}

// Create godoc
// @Summary 新建任务
// @Tags 任务管理
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "任务内容"
// @Success 201 {object} util.Response{data=model.Task} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/tasks [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var due time.Time
	if req.DueDate != "" {
		var err error
		due, err = time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			due, err = time.Parse("2006-01-02", req.DueDate)
		}
		if err != nil {
			util.BadRequest(ctx, "无法解析截止日期: "+req.DueDate)
			return
		}
	}

	task := c.TaskService.Create(req.Title, req.Description, req.CourseID, model.Priority(req.Priority), due)
	util.Created(ctx, task)
}

// SmartAddRequest 自然语言建任务请求
// swagger:model SmartAddRequest
type SmartAddRequest struct {
	Input string `json:"input" binding:"required"`
}

// SmartAdd godoc
// @Summary 自然语言建任务
// @Description AI解析自由文本；解析失败降级为以原文为标题的任务，输入不会丢失
// @Tags 任务管理
// @Accept json
// @Produce json
// @Param request body SmartAddRequest true "自由文本"
// @Success 201 {object} util.Response{data=model.Task} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/tasks/smart [post]
func (c *TaskController) SmartAdd(ctx *gin.Context) {
	var req SmartAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, c.TaskService.SmartAdd(req.Input))
}

// UpdateTaskRequest 整体更新任务请求
// swagger:model UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CourseID    string `json:"courseId"`
	DueDate     string `json:"dueDate" binding:"required"`
	IsCompleted bool   `json:"isCompleted"`
	Priority    string `json:"priority" binding:"required"`
}

// Update godoc
// @Summary 更新任务
// @Tags 任务管理
// @Accept json
// @Produce json
// @Param id path string true "任务ID"
// @Param request body UpdateTaskRequest true "任务内容"
// @Success 200 {object} util.Response{data=model.Task} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/v1/tasks/{id} [put]
func (c *TaskController) Update(ctx *gin.Context) {
	var req UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		util.BadRequest(ctx, "无法解析截止日期: "+req.DueDate)
		return
	}

	task, err := c.TaskService.Update(model.Task{
		ID:          ctx.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
		DueDate:     due,
		IsCompleted: req.IsCompleted,
		Priority:    model.Priority(req.Priority),
	})
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// Toggle godoc
// @Summary 翻转任务完成态
// @Description 完成加经验，取消完成扣回
// @Tags 任务管理
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=model.Task} "成功"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/v1/tasks/{id}/toggle [post]
func (c *TaskController) Toggle(ctx *gin.Context) {
	task, err := c.TaskService.Toggle(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, task)
}

// Delete godoc
// @Summary 删除任务
// @Description 幂等删除，重复删除同一ID也返回成功
// @Tags 任务管理
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/tasks/{id} [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	c.TaskService.Delete(ctx.Param("id"))
	util.Success(ctx, nil)
}
