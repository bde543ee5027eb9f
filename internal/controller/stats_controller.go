package controller

import (
	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// StatsController 成长数值与专注计时
type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// Get godoc
// @Summary 成长数值
// @Tags 成长
// @Produce json
// @Success 200 {object} util.Response{data=model.UserStats} "成功"
// @Router /api/v1/stats [get]
func (c *StatsController) Get(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Stats())
}

// FocusSessionRequest 专注结算请求
// swagger:model FocusSessionRequest
type FocusSessionRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

// FocusSession godoc
// @Summary 结算一次专注
// @Description 每分钟+1经验并累计总专注时长
// @Tags 成长
// @Accept json
// @Produce json
// @Param request body FocusSessionRequest true "专注分钟数"
// @Success 200 {object} util.Response{data=model.UserStats} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/stats/focus [post]
func (c *StatsController) FocusSession(ctx *gin.Context) {
	var req FocusSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.StatsService.OnFocusSession(req.Minutes)
	util.Success(ctx, c.StatsService.Stats())
}
