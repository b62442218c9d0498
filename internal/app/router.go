package app

import (
	"question_bank_backend/docs"
	"question_bank_backend/internal/config"
	"question_bank_backend/internal/middleware"
	"question_bank_backend/internal/model"
	"question_bank_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 题库浏览允许游客访问，浏览量上报对登录用户记名去重
		public.GET("/questions", c.question.List)
		public.GET("/questions/:id", c.question.Get)
		public.POST("/questions/:id/view", middleware.TryAuthMiddleware(cfg), c.question.View)
		public.GET("/comments", c.comment.ListByQuestion)
		public.GET("/comments/:id", c.comment.Get)
		public.GET("/categories", c.category.GetTree)
		public.GET("/categories/:id", c.category.Get)
		public.GET("/tags", c.tag.List)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 用户
		authGroup.GET("/auth/profile", c.user.GetProfile)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)
		authGroup.POST("/users/avatar", c.user.UploadAvatar)

		// 题目
		authGroup.POST("/questions", c.question.Create)
		authGroup.PUT("/questions/:id", c.question.Update)
		authGroup.DELETE("/questions/:id", c.question.Delete)

		// 评论
		authGroup.POST("/comments", c.comment.Create)
		authGroup.PATCH("/comments/:id", c.comment.Update)
		authGroup.DELETE("/comments/:id", c.comment.Delete)

		// 点赞
		authGroup.POST("/likes", c.like.Toggle)
		authGroup.GET("/likes/status", c.like.GetStatus)

		// 练习与收藏
		authGroup.POST("/practice/submit", c.practice.SubmitAnswer)
		authGroup.GET("/practice/records", c.practice.GetRecords)
		authGroup.GET("/practice/favorites", c.practice.GetFavorites)
		authGroup.POST("/practice/favorites", c.practice.AddFavorite)
		authGroup.DELETE("/practice/favorites/:questionId", c.practice.RemoveFavorite)

		// 分类和标签维护仅限管理员
		adminOnly := middleware.RoleMiddleware(model.RoleAdmin)
		authGroup.POST("/categories", adminOnly, c.category.Create)
		authGroup.PUT("/categories/:id", adminOnly, c.category.Update)
		authGroup.DELETE("/categories/:id", adminOnly, c.category.Delete)
		authGroup.POST("/tags", adminOnly, c.tag.Create)
	}

	// 3. 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.AdminGetUser)
		admin.PUT("/users/:id", c.user.AdminUpdateUser)
	}
}
