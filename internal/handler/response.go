// Package handler 提供 HTTP 处理器
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/types"
)

// SuccessResponse 成功响应
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Success 成功响应 (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Msg: msg})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Code: 401, Msg: msg})
}

// InternalServerError 500 错误响应
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Msg: msg})
}

// Error 按服务层错误类别映射响应状态
// 读路径的"不存在"与"不可访问"同为 401，不暴露记录是否存在
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrUnauthorized),
		errors.Is(err, types.ErrAccessProhibited):
		Unauthorized(c, err.Error())
	case errors.Is(err, types.ErrDuplicateID),
		errors.Is(err, types.ErrWriteFailed):
		BadRequest(c, err.Error())
	default:
		// 内部错误细节只进日志，不回传客户端
		log.Printf("internal error: %v", err)
		InternalServerError(c, "internal server error")
	}
}
