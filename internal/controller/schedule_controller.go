package controller

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

var startTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ScheduleController 日程块与礼拜时刻、记诵
type ScheduleController struct {
	PrayerService *service.PrayerService
	AthkarService *service.AthkarService
	container     scheduleStore
}

// scheduleStore 控制器只用到状态容器的日程子集
type scheduleStore interface {
	Schedule() []model.ScheduleBlock
	AddBlock(b model.ScheduleBlock)
	DeleteBlock(id string)
}

func NewScheduleController(container scheduleStore, prayerService *service.PrayerService, athkarService *service.AthkarService) *ScheduleController {
	return &ScheduleController{
		PrayerService: prayerService,
		AthkarService: athkarService,
		container:     container,
	}
}

// List godoc
// @Summary 日程块列表
// @Tags 日程
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ScheduleBlock} "成功"
// @Router /api/v1/schedule [get]
func (c *ScheduleController) List(ctx *gin.Context) {
	util.Success(ctx, c.container.Schedule())
}

// AddBlockRequest 新增日程块请求
// swagger:model AddBlockRequest
type AddBlockRequest struct {
	Title           string `json:"title" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=study prayer sport sleep rest meal"`
	StartTime       string `json:"startTime" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
}

// AddBlock godoc
// @Summary 新增日程块
// @Tags 日程
// @Accept json
// @Produce json
// @Param request body AddBlockRequest true "日程块"
// @Success 201 {object} util.Response{data=model.ScheduleBlock} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/schedule [post]
func (c *ScheduleController) AddBlock(ctx *gin.Context) {
	var req AddBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !startTimePattern.MatchString(req.StartTime) {
		util.BadRequest(ctx, "startTime须为24小时制HH:MM")
		return
	}
	block := model.ScheduleBlock{
		ID:              model.GenerateID(),
		Title:           req.Title,
		Type:            model.ActivityType(req.Type),
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}
	c.container.AddBlock(block)
	util.Created(ctx, block)
}

// DeleteBlock godoc
// @Summary 删除日程块
// @Tags 日程
// @Produce json
// @Param id path string true "日程块ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/schedule/{id} [delete]
func (c *ScheduleController) DeleteBlock(ctx *gin.Context) {
	c.container.DeleteBlock(ctx.Param("id"))
	util.Success(ctx, nil)
}

// Prayers godoc
// @Summary 礼拜时刻与倒计时
// @Description 六个时刻、下一时刻下标、H:MM:SS倒计时；今天过完显示غداً指向明天首个时刻
// @Tags 日程
// @Produce json
// @Success 200 {object} util.Response{data=service.NextPrayerStatus} "成功"
// @Router /api/v1/schedule/prayers [get]
func (c *ScheduleController) Prayers(ctx *gin.Context) {
	util.Success(ctx, c.PrayerService.Status(ctx.Request.Context()))
}

// SetNotificationsRequest 闹钟开关请求
// swagger:model SetNotificationsRequest
type SetNotificationsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetNotifications godoc
// @Summary 开关礼拜闹钟
// @Tags 日程
// @Accept json
// @Produce json
// @Param request body SetNotificationsRequest true "开关"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/v1/schedule/prayers/notifications [put]
func (c *ScheduleController) SetNotifications(ctx *gin.Context) {
	var req SetNotificationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.PrayerService.SetNotifications(*req.Enabled)
	util.Success(ctx, gin.H{"enabled": c.PrayerService.NotificationsEnabled()})
}

// Athkar godoc
// @Summary 记诵清单与进度
// @Description 场景取morning/evening/study，进度按天清零
// @Tags 日程
// @Produce json
// @Param category path string true "场景"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "场景不合法"
// @Router /api/v1/schedule/athkar/{category} [get]
func (c *ScheduleController) Athkar(ctx *gin.Context) {
	category := ctx.Param("category")
	if !service.ValidAthkarCategory(category) {
		util.BadRequest(ctx, "未知的记诵场景: "+category)
		return
	}
	util.Success(ctx, gin.H{
		"items":   c.AthkarService.List(category),
		"counts":  c.AthkarService.Counts(category),
		"tasbeeh": service.TasbeehWords,
	})
}

// AthkarIncrement godoc
// @Summary 给某条记诵记一遍
// @Description 计数封顶到该条目标遍数
// @Tags 日程
// @Produce json
// @Param category path string true "场景"
// @Param index path int true "条目下标"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "场景或下标不合法"
// @Router /api/v1/schedule/athkar/{category}/{index} [post]
func (c *ScheduleController) AthkarIncrement(ctx *gin.Context) {
	category := ctx.Param("category")
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "下标须为整数")
		return
	}
	count, ok := c.AthkarService.Increment(category, index)
	if !ok {
		util.BadRequest(ctx, "未知的记诵场景或下标")
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// AthkarReset godoc
// @Summary 清空某场景当天记诵进度
// @Tags 日程
// @Produce json
// @Param category path string true "场景"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "场景不合法"
// @Router /api/v1/schedule/athkar/{category} [delete]
func (c *ScheduleController) AthkarReset(ctx *gin.Context) {
	category := ctx.Param("category")
	if !service.ValidAthkarCategory(category) {
		util.BadRequest(ctx, "未知的记诵场景: "+category)
		return
	}
	c.AthkarService.Reset(category)
	util.Success(ctx, nil)
}
