package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/auth"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register 注册用户
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, user.ToUserInfo())
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		Unauthorized(c, err.Error())
		return
	}
	Success(c, resp)
}

// Logout 撤销当前令牌
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		BadRequest(c, "missing token")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		Error(c, err)
		return
	}
	Success(c, true)
}

// Me 返回当前用户信息
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	Success(c, caller.ToUserInfo())
}
