package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/task"
)

// TaskHandler 训练任务处理器
type TaskHandler struct {
	svc *task.Service
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(svc *task.Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List 列出任务
func (h *TaskHandler) List(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}

	data, err := h.svc.List(c.Request.Context(), caller)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, data)
}

// Get 按 ID 获取任务
func (h *TaskHandler) Get(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		BadRequest(c, "id is required")
		return
	}

	data, err := h.svc.Get(c.Request.Context(), caller, id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, data)
}

// ListByDataset 列出数据集下的任务
func (h *TaskHandler) ListByDataset(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	datasetID := c.Query("dataset_id")
	if datasetID == "" {
		BadRequest(c, "dataset_id is required")
		return
	}

	data, err := h.svc.ListByDataset(c.Request.Context(), caller, datasetID)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, data)
}

// Create 创建任务
func (h *TaskHandler) Create(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var form task.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}

	data, err := h.svc.Create(c.Request.Context(), caller, &form)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, data)
}

// Update 按 ID 更新任务
func (h *TaskHandler) Update(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		BadRequest(c, "id is required")
		return
	}
	var form task.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, err.Error())
		return
	}

	data, err := h.svc.Update(c.Request.Context(), caller, id, &form)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, data)
}

// Delete 按 ID 删除任务
func (h *TaskHandler) Delete(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		BadRequest(c, "id is required")
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), caller, id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, deleted)
}
