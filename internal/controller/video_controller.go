package controller

import (
	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// VideoController 内置视频课程库（只读）
type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

// Teachers godoc
// @Summary 讲师列表
// @Tags 视频库
// @Produce json
// @Success 200 {object} util.Response{data=[]model.VideoTeacher} "成功"
// @Router /api/v1/videos/teachers [get]
func (c *VideoController) Teachers(ctx *gin.Context) {
	util.Success(ctx, c.VideoService.Teachers())
}

// Lessons godoc
// @Summary 视频课程列表
// @Description 按track/teacherId/category过滤，全部可选；common轨道对所有track可见
// @Tags 视频库
// @Produce json
// @Param track query string false "轨道 common|science|math|arts"
// @Param teacherId query string false "讲师ID"
// @Param category query string false "分类 explanation|revision|exam"
// @Success 200 {object} util.Response{data=[]model.VideoLesson} "成功"
// @Router /api/v1/videos [get]
func (c *VideoController) Lessons(ctx *gin.Context) {
	util.Success(ctx, c.VideoService.Lessons(
		model.SubjectTrack(ctx.Query("track")),
		ctx.Query("teacherId"),
		model.VideoCategory(ctx.Query("category")),
	))
}
