package controller

import (
	"errors"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// Create godoc
// @Summary 创建分类
// @Description 创建新分类，仅管理员可操作
// @Tags 分类
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.CreateCategoryRequest true "分类内容"
// @Success 201 {object} util.Response{data=model.Category} "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 404 {object} util.ErrorResponse "父分类不存在"
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req service.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(req)
	if err != nil {
		c.writeCategoryError(ctx, err)
		return
	}

	util.Created(ctx, category)
}

// GetTree godoc
// @Summary 获取分类树
// @Description 返回按 sort_order 排序的完整分类树
// @Tags 分类
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category} "查询成功"
// @Router /api/categories [get]
func (c *CategoryController) GetTree(ctx *gin.Context) {
	tree, err := c.CategoryService.GetTree()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tree)
}

// Get godoc
// @Summary 获取分类详情
// @Tags 分类
// @Produce  json
// @Param id path string true "分类ID"
// @Success 200 {object} util.Response{data=model.Category} "查询成功"
// @Failure 404 {object} util.ErrorResponse "分类不存在"
// @Router /api/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	category, err := c.CategoryService.GetByID(ctx.Param("id"))
	if err != nil {
		c.writeCategoryError(ctx, err)
		return
	}

	util.Success(ctx, category)
}

// Update godoc
// @Summary 更新分类
// @Description 更新分类，移动父节点时会拒绝成环操作，仅管理员可操作
// @Tags 分类
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "分类ID"
// @Param body body service.UpdateCategoryRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.Category} "更新成功"
// @Failure 400 {object} util.ErrorResponse "父节点成环"
// @Failure 404 {object} util.ErrorResponse "分类不存在"
// @Router /api/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req service.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(ctx.Param("id"), req)
	if err != nil {
		c.writeCategoryError(ctx, err)
		return
	}

	util.Success(ctx, category)
}

// Delete godoc
// @Summary 删除分类
// @Description 删除分类，子分类挂到其父节点下，关联题目的分类置空，仅管理员可操作
// @Tags 分类
// @Produce  json
// @Security BearerAuth
// @Param id path string true "分类ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.ErrorResponse "分类不存在"
// @Router /api/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.CategoryService.Delete(ctx.Param("id")); err != nil {
		c.writeCategoryError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func (c *CategoryController) writeCategoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrCategoryCycle):
		util.BadRequest(ctx, "父分类不能是自身或其子孙节点")
	default:
		util.LogInternalError(ctx, err)
	}
}
