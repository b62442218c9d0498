package controller

import (
	"errors"
	"strconv"

	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// GetProfile godoc
// @Summary 获取个人信息
// @Description 返回当前登录用户的资料
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User} "查询成功"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/auth/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetByID(user.UserID)
	if err != nil {
		c.writeUserError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary 更新个人信息
// @Description 修改用户名或头像地址
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param body body service.UpdateProfileRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.User} "更新成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateProfile(user.UserID, req)
	if err != nil {
		c.writeUserError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 上传头像文件并更新用户资料，支持 png/jpg/jpeg/gif/webp
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param file formData file true "头像文件"
// @Success 200 {object} util.Response{data=model.User} "上传成功"
// @Failure 400 {object} util.ErrorResponse "文件类型不支持"
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少头像文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadAvatar(ctx.Request.Context(), fileHeader.Filename, file,
		fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateProfile(user.UserID, service.UpdateProfileRequest{Avatar: url})
	if err != nil {
		c.writeUserError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// ListUsers godoc
// @Summary 获取用户列表
// @Description 分页查询用户，仅管理员可操作
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param role query string false "角色筛选" Enums(user, admin)
// @Param search query string false "邮箱/用户名模糊搜索"
// @Success 200 {object} util.Response{data=util.PageResponse} "查询成功"
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	filter := repository.UserFilter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
	}

	users, total, err := c.UserService.GetUsers(page, limit, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(users, total, page, limit))
}

// AdminGetUser godoc
// @Summary 获取用户详情
// @Description 查询单个用户，仅管理员可操作
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response{data=model.User} "查询成功"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/admin/users/{id} [get]
func (c *UserController) AdminGetUser(ctx *gin.Context) {
	user, err := c.UserService.GetByID(ctx.Param("id"))
	if err != nil {
		c.writeUserError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// AdminUpdateUser godoc
// @Summary 管理用户
// @Description 修改用户角色或禁用状态，仅管理员可操作
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Param body body service.AdminUpdateRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.User} "更新成功"
// @Failure 404 {object} util.ErrorResponse "用户不存在"
// @Router /api/admin/users/{id} [put]
func (c *UserController) AdminUpdateUser(ctx *gin.Context) {
	var req service.AdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.AdminUpdate(ctx.Param("id"), req)
	if err != nil {
		c.writeUserError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

func (c *UserController) writeUserError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
