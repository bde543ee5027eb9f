package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// DashboardController 首页聚合视图
type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Summary godoc
// @Summary 首页聚合数据
// @Description 一次请求返回打气文案、考试倒计时、成长数值、最近任务与最需努力的科目
// @Tags 首页
// @Produce json
// @Success 200 {object} util.Response{data=service.DashboardSummary} "成功"
// @Router /api/v1/dashboard [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.Summary())
}

// SetExamDateRequest 修改考试日请求
// swagger:model SetExamDateRequest
type SetExamDateRequest struct {
	ExamDate string `json:"examDate" binding:"required"`
}

// SetExamDate godoc
// @Summary 修改考试日期
// @Description 考试倒计时的目标日期，接受RFC3339或YYYY-MM-DD
// @Tags 首页
// @Accept json
// @Produce json
// @Param request body SetExamDateRequest true "考试日期"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "日期格式错误"
// @Router /api/v1/dashboard/exam-date [put]
func (c *DashboardController) SetExamDate(ctx *gin.Context) {
	var req SetExamDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.ExamDate)
	if err != nil {
		date, err = time.Parse("2006-01-02", req.ExamDate)
	}
	if err != nil {
		util.BadRequest(ctx, "无法解析日期: "+req.ExamDate)
		return
	}

	c.DashboardService.SetExamDate(date)
	util.Success(ctx, gin.H{
		"examDate": date.Format(time.RFC3339),
		"daysLeft": c.DashboardService.DaysLeft(),
	})
}
