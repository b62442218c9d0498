package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	TagService *service.TagService
}

func NewTagController(tagService *service.TagService) *TagController {
	return &TagController{TagService: tagService}
}

// Create godoc
// @Summary 创建标签
// @Description 创建标签，同名标签已存在时返回已有记录，仅管理员可操作
// @Tags 标签
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.CreateTagRequest true "标签内容"
// @Success 201 {object} util.Response{data=model.Tag} "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Router /api/tags [post]
func (c *TagController) Create(ctx *gin.Context) {
	var req service.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tag, err := c.TagService.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, tag)
}

// List godoc
// @Summary 获取标签列表
// @Description 返回全部标签，按名称排序
// @Tags 标签
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Tag} "查询成功"
// @Router /api/tags [get]
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.TagService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tags)
}
