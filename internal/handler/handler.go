package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/middleware"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth       *AuthHandler
	Dataset    *DatasetHandler
	Task       *TaskHandler
	Evaluation *EvaluationHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Dataset:    NewDatasetHandler(svc.Dataset),
		Task:       NewTaskHandler(svc.Task),
		Evaluation: NewEvaluationHandler(svc.Evaluation),
	}
}

// currentUser 取出中间件注入的调用方，缺失时直接响应 401
func currentUser(c *gin.Context) (*model.User, bool) {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		Unauthorized(c, "not authenticated")
	}
	return caller, ok
}
