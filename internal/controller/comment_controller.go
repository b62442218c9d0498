package controller

import (
	"errors"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{CommentService: commentService}
}

// Create godoc
// @Summary 发表评论
// @Description 对题目发表评论，携带 parentId 时为回复
// @Tags 评论
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.CreateCommentRequest true "评论内容"
// @Success 201 {object} util.Response{data=model.Comment} "创建成功"
// @Failure 400 {object} util.ErrorResponse "父评论与题目不匹配"
// @Failure 404 {object} util.ErrorResponse "题目或父评论不存在"
// @Router /api/comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Create(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrCommentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrParentMismatch):
			util.BadRequest(ctx, "父评论不属于该题目")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, comment)
}

// ListByQuestion godoc
// @Summary 获取题目评论
// @Description 返回题目的评论树，顶层按时间倒序，回复按时间正序
// @Tags 评论
// @Produce  json
// @Param questionId query string true "题目ID"
// @Success 200 {object} util.Response{data=[]model.Comment} "查询成功"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/comments [get]
func (c *CommentController) ListByQuestion(ctx *gin.Context) {
	questionID := ctx.Query("questionId")
	if questionID == "" {
		util.BadRequest(ctx, "questionId 为必填参数")
		return
	}

	comments, err := c.CommentService.GetByQuestion(questionID)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, comments)
}

// Get godoc
// @Summary 获取评论详情
// @Tags 评论
// @Produce  json
// @Param id path string true "评论ID"
// @Success 200 {object} util.Response{data=model.Comment} "查询成功"
// @Failure 404 {object} util.ErrorResponse "评论不存在"
// @Router /api/comments/{id} [get]
func (c *CommentController) Get(ctx *gin.Context) {
	comment, err := c.CommentService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCommentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, comment)
}

// Update godoc
// @Summary 编辑评论
// @Description 修改评论内容，仅作者或管理员可操作
// @Tags 评论
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "评论ID"
// @Param body body service.UpdateCommentRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.Comment} "更新成功"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 404 {object} util.ErrorResponse "评论不存在"
// @Router /api/comments/{id} [patch]
func (c *CommentController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Update(ctx.Param("id"), user.UserID, user.Role, req)
	if err != nil {
		c.writeCommentError(ctx, err)
		return
	}

	util.Success(ctx, comment)
}

// Delete godoc
// @Summary 删除评论
// @Description 删除评论及其全部回复和点赞，仅作者或管理员可操作
// @Tags 评论
// @Produce  json
// @Security BearerAuth
// @Param id path string true "评论ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 404 {object} util.ErrorResponse "评论不存在"
// @Router /api/comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CommentService.Delete(ctx.Param("id"), user.UserID, user.Role); err != nil {
		c.writeCommentError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func (c *CommentController) writeCommentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCommentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
