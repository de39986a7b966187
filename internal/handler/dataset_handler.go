package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/dataset"
)

// DatasetHandler 数据集处理器
type DatasetHandler struct {
	svc *dataset.Service
}

// NewDatasetHandler 创建数据集处理器
func NewDatasetHandler(svc *dataset.Service) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// List 列出数据集
func (h *DatasetHandler) List(c *gin.Context) {
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

// Get 按 ID 获取数据集
func (h *DatasetHandler) Get(c *gin.Context) {
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

// Create 创建数据集
func (h *DatasetHandler) Create(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var form dataset.Form
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

// Update 按 ID 更新数据集
func (h *DatasetHandler) Update(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		BadRequest(c, "id is required")
		return
	}
	var form dataset.Form
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

// Delete 按 ID 删除数据集
func (h *DatasetHandler) Delete(c *gin.Context) {
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
