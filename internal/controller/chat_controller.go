package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"thanawya_backend/internal/service"
	"thanawya_backend/internal/util"
)

// ChatController AI导师多轮对话
type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// Sessions godoc
// @Summary 会话历史列表
// @Description 按最近修改时间降序
// @Tags AI对话
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ChatSession} "成功"
// @Router /api/v1/chat/sessions [get]
func (c *ChatController) Sessions(ctx *gin.Context) {
	util.Success(ctx, c.ChatService.Sessions())
}

// NewSession godoc
// @Summary 新建会话
// @Tags AI对话
// @Produce json
// @Success 201 {object} util.Response{data=model.ChatSession} "已创建"
// @Router /api/v1/chat/sessions [post]
func (c *ChatController) NewSession(ctx *gin.Context) {
	util.Created(ctx, c.ChatService.NewSession())
}

// Session godoc
// @Summary 会话详情
// @Tags AI对话
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=model.ChatSession} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/v1/chat/sessions/{id} [get]
func (c *ChatController) Session(ctx *gin.Context) {
	sess, err := c.ChatService.Session(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, sess)
}

// DeleteSession godoc
// @Summary 删除会话
// @Tags AI对话
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/v1/chat/sessions/{id} [delete]
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	c.ChatService.DeleteSession(ctx.Param("id"))
	util.Success(ctx, nil)
}

// SendMessageRequest 发消息请求，可选带一张data URL图片
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

// Send godoc
// @Summary 发送消息并取AI回复
// @Description AI不可用时回复固定致歉文案而不是报错；等待期间会话被删则丢弃回包
// @Tags AI对话
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param request body SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=model.ChatSession} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "回包已过期被丢弃"
// @Router /api/v1/chat/sessions/{id}/messages [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.ChatService.Send(ctx.Param("id"), req.Content, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrStaleResponse):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sess)
}
