package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// CurriculumController 课程地图：课程/单元/课时三层的增删与状态推进
type CurriculumController struct {
	CurriculumService *service.CurriculumService
}

func NewCurriculumController(curriculumService *service.CurriculumService) *CurriculumController {
	return &CurriculumController{CurriculumService: curriculumService}
}

func respondCurriculumErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrUnitNotFound),
		errors.Is(err, util.ErrLessonNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// List godoc
// @Summary 课程列表
// @Tags 课程地图
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/v1/courses [get]
func (c *CurriculumController) List(ctx *gin.Context) {
	util.Success(ctx, c.CurriculumService.Courses())
}

// CreateCourseRequest 新建课程请求
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	Name       string  `json:"name" binding:"required"`
	Credits    float64 `json:"credits" binding:"required,gt=0"`
	Difficulty string  `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Color      string  `json:"color"`
}

// CreateCourse godoc
// @Summary 新建课程
// @Tags 课程地图
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "课程内容"
// @Success 201 {object} util.Response{data=model.Course} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/courses [post]
func (c *CurriculumController) CreateCourse(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	difficulty := model.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	util.Created(ctx, c.CurriculumService.CreateCourse(req.Name, req.Credits, difficulty, req.Color))
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 连带删除其下全部单元和课时
// @Tags 课程地图
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/courses/{id} [delete]
func (c *CurriculumController) DeleteCourse(ctx *gin.Context) {
	c.CurriculumService.DeleteCourse(ctx.Param("id"))
	util.Success(ctx, nil)
}

// TitleRequest 只带标题的创建请求（单元/课时共用）
// swagger:model TitleRequest
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// AddUnit godoc
// @Summary 给课程添加单元
// @Tags 课程地图
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param request body TitleRequest true "单元标题"
// @Success 201 {object} util.Response{data=model.Unit} "已创建"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/v1/courses/{id}/units [post]
func (c *CurriculumController) AddUnit(ctx *gin.Context) {
	var req TitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	unit, err := c.CurriculumService.AddUnit(ctx.Param("id"), req.Title)
	if err != nil {
		respondCurriculumErr(ctx, err)
		return
	}
	util.Created(ctx, unit)
}

// DeleteUnit godoc
// @Summary 删除单元
// @Tags 课程地图
// @Produce json
// @Param id path string true "课程ID"
// @Param unitId path string true "单元ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程或单元不存在"
// @Router /api/v1/courses/{id}/units/{unitId} [delete]
func (c *CurriculumController) DeleteUnit(ctx *gin.Context) {
	if err := c.CurriculumService.DeleteUnit(ctx.Param("id"), ctx.Param("unitId")); err != nil {
		respondCurriculumErr(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddLesson godoc
// @Summary 给单元添加课时
// @Description 新课时从pending状态开始
// @Tags 课程地图
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param unitId path string true "单元ID"
// @Param request body TitleRequest true "课时标题"
// @Success 201 {object} util.Response{data=model.Lesson} "已创建"
// @Failure 404 {object} util.Response "课程或单元不存在"
// @Router /api/v1/courses/{id}/units/{unitId}/lessons [post]
func (c *CurriculumController) AddLesson(ctx *gin.Context) {
	var req TitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson, err := c.CurriculumService.AddLesson(ctx.Param("id"), ctx.Param("unitId"), req.Title)
	if err != nil {
		respondCurriculumErr(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// DeleteLesson godoc
// @Summary 删除课时
// @Tags 课程地图
// @Produce json
// @Param id path string true "课程ID"
// @Param unitId path string true "单元ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程、单元或课时不存在"
// @Router /api/v1/courses/{id}/units/{unitId}/lessons/{lessonId} [delete]
func (c *CurriculumController) DeleteLesson(ctx *gin.Context) {
	if err := c.CurriculumService.DeleteLesson(ctx.Param("id"), ctx.Param("unitId"), ctx.Param("lessonId")); err != nil {
		respondCurriculumErr(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CycleLesson godoc
// @Summary 推进课时状态
// @Description pending→reading→homework→review→mastered→pending 循环推进一格
// @Tags 课程地图
// @Produce json
// @Param id path string true "课程ID"
// @Param unitId path string true "单元ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} util.Response{data=model.Lesson} "成功"
// @Failure 404 {object} util.Response "课程、单元或课时不存在"
// @Router /api/v1/courses/{id}/units/{unitId}/lessons/{lessonId}/cycle [post]
func (c *CurriculumController) CycleLesson(ctx *gin.Context) {
	lesson, err := c.CurriculumService.CycleLesson(ctx.Param("id"), ctx.Param("unitId"), ctx.Param("lessonId"))
	if err != nil {
		respondCurriculumErr(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}
