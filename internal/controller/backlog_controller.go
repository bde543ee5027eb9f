package controller

import (
	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// BacklogController 补课规划：分科选择、学习配置、AI周计划
type BacklogController struct {
	BacklogService *service.BacklogService
}

func NewBacklogController(backlogService *service.BacklogService) *BacklogController {
	return &BacklogController{BacklogService: backlogService}
}

// State godoc
// @Summary 补课规划当前状态
// @Description 已选分科、可配置科目清单、待补总量
// @Tags 补课规划
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/v1/backlog [get]
func (c *BacklogController) State(ctx *gin.Context) {
	track, subTrack := c.BacklogService.Track()
	util.Success(ctx, gin.H{
		"track":        track,
		"subTrack":     subTrack,
		"subjects":     c.BacklogService.Subjects(),
		"backlogTotal": c.BacklogService.BacklogTotal(),
	})
}

// SetTrackRequest 分科选择请求
// swagger:model SetTrackRequest
type SetTrackRequest struct {
	Track    string `json:"track" binding:"required,oneof=arts sci"`
	SubTrack string `json:"subTrack" binding:"omitempty,oneof=science math"`
}

// SetTrack godoc
// @Summary 选择分科
// @Description arts直接生效；sci可带子方向science/math
// @Tags 补课规划
// @Accept json
// @Produce json
// @Param request body SetTrackRequest true "分科"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/backlog/track [put]
func (c *BacklogController) SetTrack(ctx *gin.Context) {
	var req SetTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.BacklogService.SetTrack(req.Track, req.SubTrack)
	util.Success(ctx, gin.H{"subjects": c.BacklogService.Subjects()})
}

// ResetTrack godoc
// @Summary 重置分科选择
// @Tags 补课规划
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/backlog/track [delete]
func (c *BacklogController) ResetTrack(ctx *gin.Context) {
	c.BacklogService.ResetTrack()
	util.Success(ctx, nil)
}

// SaveConfigRequest 科目学习配置请求
// swagger:model SaveConfigRequest
type SaveConfigRequest struct {
	Subject string            `json:"subject" binding:"required"`
	Color   string            `json:"color"`
	Config  model.StudyConfig `json:"config" binding:"required"`
}

// SaveConfig godoc
// @Summary 保存科目学习配置
// @Description 科目尚无对应课程时先自动建课（学分4、难度Medium）
// @Tags 补课规划
// @Accept json
// @Produce json
// @Param request body SaveConfigRequest true "学习配置"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/backlog/config [put]
func (c *BacklogController) SaveConfig(ctx *gin.Context) {
	var req SaveConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.BacklogService.SaveConfig(req.Subject, req.Color, req.Config))
}

// GeneratePlan godoc
// @Summary 生成一周补课计划
// @Description 周六到周五固定七天；没有可排科目或AI失败时返回空计划
// @Tags 补课规划
// @Produce json
// @Success 200 {object} util.Response{data=[]model.DailyPlan} "成功"
// @Router /api/v1/backlog/plan [post]
func (c *BacklogController) GeneratePlan(ctx *gin.Context) {
	util.Success(ctx, c.BacklogService.GeneratePlan())
}
