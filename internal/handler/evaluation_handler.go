package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/evaluation"
)

// EvaluationHandler 评估处理器
type EvaluationHandler struct {
	svc *evaluation.Service
}

// NewEvaluationHandler 创建评估处理器
func NewEvaluationHandler(svc *evaluation.Service) *EvaluationHandler {
	return &EvaluationHandler{svc: svc}
}

// List 列出评估
func (h *EvaluationHandler) List(c *gin.Context) {
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

// Get 按 ID 获取评估
func (h *EvaluationHandler) Get(c *gin.Context) {
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

// ListByDataset 列出数据集下的评估
func (h *EvaluationHandler) ListByDataset(c *gin.Context) {
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

// Create 创建评估
func (h *EvaluationHandler) Create(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var form evaluation.Form
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

// UpdateStatus 按 ID 更新评估状态
// 仅改动状态字段，任务列表等其余字段不变
func (h *EvaluationHandler) UpdateStatus(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Query("id")
	status := c.Query("status")
	if id == "" || status == "" {
		BadRequest(c, "id and status are required")
		return
	}

	data, err := h.svc.UpdateStatus(c.Request.Context(), caller, id, status)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, data)
}

// Delete 按 ID 删除评估
func (h *EvaluationHandler) Delete(c *gin.Context) {
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
