package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// PredictorController 总评预测
type PredictorController struct {
	PredictorService *service.PredictorService
}

func NewPredictorController(predictorService *service.PredictorService) *PredictorController {
	return &PredictorController{PredictorService: predictorService}
}

// Summary godoc
// @Summary 总评预测
// @Description 当前总评与目标总评（学分加权，两位小数），以及差距最大的科目
// @Tags 总评预测
// @Produce json
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/v1/predictor [get]
func (c *PredictorController) Summary(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"currentTotal": service.FormatTotal(c.PredictorService.WeightedTotal(false)),
		"targetTotal":  service.FormatTotal(c.PredictorService.WeightedTotal(true)),
		"biggestGap":   c.PredictorService.BiggestGap(),
	})
}

// UpdateGradesRequest 更新当前/目标分请求，缺省字段不动
// swagger:model UpdateGradesRequest
type UpdateGradesRequest struct {
	CurrentGrade *float64 `json:"currentGrade"`
	TargetGrade  *float64 `json:"targetGrade"`
}

// UpdateGrades godoc
// @Summary 更新课程分数
// @Description 当前分和目标分独立可选，越界值截断到[0,100]
// @Tags 总评预测
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param request body UpdateGradesRequest true "分数"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/v1/predictor/courses/{id} [put]
func (c *PredictorController) UpdateGrades(ctx *gin.Context) {
	var req UpdateGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.PredictorService.UpdateGrades(ctx.Param("id"), req.CurrentGrade, req.TargetGrade)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Simulate godoc
// @Summary 假设推演
// @Description 最弱科目+5分后的总评变化，纯计算不落库
// @Tags 总评预测
// @Produce json
// @Success 200 {object} util.Response{data=service.SimulationResult} "成功"
// @Router /api/v1/predictor/simulate [get]
func (c *PredictorController) Simulate(ctx *gin.Context) {
	util.Success(ctx, c.PredictorService.SimulateImprovement())
}
