// Package router 注册 HTTP 路由
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/handler"
	"github.com/ashwinyue/dataset-hub/internal/middleware"
	"github.com/ashwinyue/dataset-hub/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 认证
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", middleware.RequireAuth(svc.Auth), h.Auth.Logout)
		authGroup.GET("/me", middleware.RequireAuth(svc.Auth), h.Auth.Me)
	}

	// API v1，全部要求认证
	v1 := r.Group("/api/v1", middleware.RequireAuth(svc.Auth))
	{
		// Dataset 数据集
		datasets := v1.Group("/datasets")
		{
			datasets.GET("", h.Dataset.List)
			datasets.GET("/dataset", h.Dataset.Get)
			datasets.POST("/create", h.Dataset.Create)
			datasets.POST("/dataset/update", h.Dataset.Update)
			datasets.DELETE("/dataset/delete", h.Dataset.Delete)
		}

		// DatasetTask 训练任务
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.GET("/task", h.Task.Get)
			tasks.GET("/dataset", h.Task.ListByDataset)
			tasks.POST("/create", h.Task.Create)
			tasks.POST("/task/update", h.Task.Update)
			tasks.DELETE("/task/delete", h.Task.Delete)
		}

		// DatasetEvaluation 评估
		evaluations := v1.Group("/evaluations")
		{
			evaluations.GET("", h.Evaluation.List)
			evaluations.GET("/evaluation", h.Evaluation.Get)
			evaluations.GET("/dataset", h.Evaluation.ListByDataset)
			evaluations.POST("/create", h.Evaluation.Create)
			evaluations.POST("/evaluation/status/update", h.Evaluation.UpdateStatus)
			evaluations.DELETE("/evaluation/delete", h.Evaluation.Delete)
		}
	}

	return r
}
