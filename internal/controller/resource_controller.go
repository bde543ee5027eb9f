package controller

import (
	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// ResourceController 学习资料库
type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// List godoc
// @Summary 资料列表
// @Tags 资料库
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ResourceItem} "成功"
// @Router /api/v1/resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	util.Success(ctx, c.ResourceService.List())
}

// AddResourceRequest 登记外链资料请求
// swagger:model AddResourceRequest
type AddResourceRequest struct {
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=pdf video link book"`
	URL      string `json:"url" binding:"required"`
	CourseID string `json:"courseId"`
}

// Add godoc
// @Summary 登记外链资料
// @Tags 资料库
// @Accept json
// @Produce json
// @Param request body AddResourceRequest true "资料内容"
// @Success 201 {object} util.Response{data=model.ResourceItem} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/v1/resources [post]
func (c *ResourceController) Add(ctx *gin.Context) {
	var req AddResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, c.ResourceService.Add(req.Title, model.ResourceType(req.Type), req.URL, req.CourseID))
}

// Upload godoc
// @Summary 上传文件资料
// @Description multipart表单：file必填，title/type/courseId随表单字段带。视频会探测时长
// @Tags 资料库
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "文件"
// @Param title formData string true "标题"
// @Param type formData string true "类型 pdf|video|book"
// @Param courseId formData string false "关联课程ID"
// @Success 201 {object} util.Response{data=model.ResourceItem} "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "存储失败"
// @Router /api/v1/resources/upload [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少file字段")
		return
	}
	title := ctx.PostForm("title")
	resType := ctx.PostForm("type")
	if title == "" || resType == "" {
		util.BadRequest(ctx, "title和type为必填")
		return
	}

	item, err := c.ResourceService.Upload(title, model.ResourceType(resType), ctx.PostForm("courseId"), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// Delete godoc
// @Summary 删除资料
// @Description 上传类资料连文件一起删
// @Tags 资料库
// @Produce json
// @Param id path string true "资料ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	c.ResourceService.Delete(ctx.Param("id"))
	util.Success(ctx, nil)
}
