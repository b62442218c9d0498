package controller

import (
	"errors"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Description 按题目类型判题并写入练习记录
// @Tags 练习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.SubmitAnswerRequest true "答题内容"
// @Success 201 {object} util.Response{data=model.PracticeRecord} "提交成功"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /api/practice/submit [post]
func (c *PracticeController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.PracticeService.SubmitAnswer(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, record)
}

// GetRecords godoc
// @Summary 获取练习记录
// @Description 返回当前用户的练习记录，按时间倒序
// @Tags 练习
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PracticeRecord} "查询成功"
// @Router /api/practice/records [get]
func (c *PracticeController) GetRecords(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.PracticeService.GetRecords(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}

// AddFavoriteRequest 收藏题目
type AddFavoriteRequest struct {
	QuestionID string `json:"questionId" binding:"required,uuid"`
}

// AddFavorite godoc
// @Summary 收藏题目
// @Description 将题目加入收藏，重复收藏报冲突
// @Tags 收藏
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body AddFavoriteRequest true "收藏目标"
// @Success 201 {object} util.Response{data=model.Favorite} "收藏成功"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Failure 409 {object} util.ErrorResponse "已收藏"
// @Router /api/practice/favorites [post]
func (c *PracticeController) AddFavorite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AddFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	favorite, err := c.PracticeService.AddFavorite(user.UserID, req.QuestionID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyFavorited):
			util.Conflict(ctx, "该题目已收藏")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, favorite)
}

// RemoveFavorite godoc
// @Summary 取消收藏
// @Description 将题目从收藏中移除
// @Tags 收藏
// @Produce  json
// @Security BearerAuth
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response "取消成功"
// @Failure 404 {object} util.ErrorResponse "收藏不存在"
// @Router /api/practice/favorites/{questionId} [delete]
func (c *PracticeController) RemoveFavorite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PracticeService.RemoveFavorite(user.UserID, ctx.Param("questionId")); err != nil {
		if errors.Is(err, util.ErrFavoriteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// GetFavorites godoc
// @Summary 获取收藏列表
// @Description 返回当前用户收藏的题目，按收藏时间倒序
// @Tags 收藏
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Favorite} "查询成功"
// @Router /api/practice/favorites [get]
func (c *PracticeController) GetFavorites(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	favorites, err := c.PracticeService.GetFavorites(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, favorites)
}
