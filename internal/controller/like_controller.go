package controller

import (
	"errors"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LikeController struct {
	LikeService *service.LikeService
}

func NewLikeController(likeService *service.LikeService) *LikeController {
	return &LikeController{LikeService: likeService}
}

// Toggle godoc
// @Summary 切换点赞
// @Description 对题目或评论点赞，已点赞时取消，返回切换后的状态
// @Tags 点赞
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.ToggleLikeRequest true "点赞目标"
// @Success 200 {object} util.Response "切换成功"
// @Failure 404 {object} util.ErrorResponse "目标不存在"
// @Router /api/likes [post]
func (c *LikeController) Toggle(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ToggleLikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	liked, err := c.LikeService.Toggle(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrCommentNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"liked": liked})
}

// GetStatus godoc
// @Summary 查询点赞状态
// @Description 查询当前用户对目标是否已点赞
// @Tags 点赞
// @Produce  json
// @Security BearerAuth
// @Param targetId query string true "目标ID"
// @Param targetType query string true "目标类型" Enums(question, comment)
// @Success 200 {object} util.Response "查询成功"
// @Router /api/likes/status [get]
func (c *LikeController) GetStatus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID := ctx.Query("targetId")
	targetType := model.LikeTargetType(ctx.Query("targetType"))
	if targetID == "" || (targetType != model.LikeTargetQuestion && targetType != model.LikeTargetComment) {
		util.BadRequest(ctx, "targetId 和 targetType 为必填参数")
		return
	}

	liked, err := c.LikeService.GetStatus(user.UserID, targetID, targetType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"liked": liked})
}
