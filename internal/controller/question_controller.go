package controller

import (
	"errors"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Create godoc
// @Summary 创建题目
// @Description 创建新题目，创建者自动获得贡献分
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.CreateQuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 404 {object} util.ErrorResponse "分类或标签不存在"
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCategoryNotFound), errors.Is(err, util.ErrTagNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, question)
}

// List godoc
// @Summary 获取题目列表
// @Description 按类型、难度、分类、标签等条件分页查询题目
// @Tags 题目
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param type query string false "题目类型" Enums(single, multiple, judge, fill, short, coding)
// @Param difficulty query string false "难度" Enums(easy, medium, hard)
// @Param categoryId query string false "分类ID"
// @Param tagIds query []string false "标签ID列表"
// @Param search query string false "标题/内容模糊搜索"
// @Param sortOrder query string false "按创建时间排序" Enums(ASC, DESC) default(DESC)
// @Success 200 {object} util.Response{data=util.PageResponse} "查询成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	var query service.QuestionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, meta, err := c.QuestionService.FindAll(query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{Items: questions, Meta: meta})
}

// Get godoc
// @Summary 获取题目详情
// @Tags 题目
// @Produce  json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response{data=model.Question} "查询成功"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	question, err := c.QuestionService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}

// View godoc
// @Summary 上报题目浏览
// @Description 累加题目浏览量，同一用户或IP十分钟内只计一次
// @Tags 题目
// @Produce  json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response "上报成功"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/questions/{id}/view [post]
func (c *QuestionController) View(ctx *gin.Context) {
	id := ctx.Param("id")

	userID := ""
	if user := util.GetUserFromContext(ctx); user != nil {
		userID = user.UserID
	}

	if err := c.QuestionService.IncrementView(id, userID, ctx.ClientIP()); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		// 浏览量不是关键数据，记录后照常返回
		logger.Log.Warn("累加浏览量失败", zap.String("question_id", id), zap.Error(err))
	}

	util.Success(ctx, nil)
}

// Update godoc
// @Summary 更新题目
// @Description 更新题目内容，仅创建者或管理员可操作
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "题目ID"
// @Param body body service.UpdateQuestionRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.Question} "更新成功"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(ctx.Param("id"), user.UserID, user.Role, req)
	if err != nil {
		c.writeQuestionError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// Delete godoc
// @Summary 删除题目
// @Description 删除题目及其评论、点赞、收藏和练习记录，仅创建者或管理员可操作
// @Tags 题目
// @Produce  json
// @Security BearerAuth
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 403 {object} util.ErrorResponse "无权限"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuestionService.Delete(ctx.Param("id"), user.UserID, user.Role); err != nil {
		c.writeQuestionError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func (c *QuestionController) writeQuestionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrCategoryNotFound),
		errors.Is(err, util.ErrTagNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
