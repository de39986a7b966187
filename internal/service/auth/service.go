// Package auth 提供注册、登录与令牌校验
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinyue/dataset-hub/internal/config"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
)

const revokedKeyPrefix = "dataset-hub:revoked:"

// Service 认证服务
type Service struct {
	repo     *repository.Repositories
	redis    *redis.Client
	secret   string
	tokenTTL time.Duration
}

// NewService 创建认证服务
// 未配置密钥时随机生成，重启后已签发令牌失效
func NewService(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Service, error) {
	secret := cfg.Auth.Secret
	if secret == "" {
		randomBytes := make([]byte, 32)
		if _, err := rand.Read(randomBytes); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = base64.StdEncoding.EncodeToString(randomBytes)
	}

	ttl := time.Duration(cfg.Auth.TokenTTL) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		repo:     repo,
		redis:    redisClient,
		secret:   secret,
		tokenTTL: ttl,
	}, nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User  *model.UserInfo `json:"user"`
	Token string          `json:"token"`
}

// Register 注册用户
// 首个注册用户自动成为管理员
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	existing, err := s.repo.User.GetUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleUser
	count, err := s.repo.User.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count == 0 {
		role = model.RoleAdmin
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.User.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login 用户登录，签发 JWT
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.User.GetUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}
	if !user.IsActive {
		return nil, errors.New("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	record := &model.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
	}
	if err := s.repo.User.CreateToken(record); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &LoginResponse{User: user.ToUserInfo(), Token: token}, nil
}

// Logout 撤销令牌
// 撤销同时写入 Redis 黑名单，校验路径无需回查数据库
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	if err := s.repo.User.RevokeToken(tokenString); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if s.redis != nil {
		s.redis.Set(ctx, revokedKeyPrefix+tokenString, 1, s.tokenTTL)
	}
	return nil
}

// ValidateToken 验证令牌并返回对应用户
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid user id in token")
	}

	if s.isRevoked(ctx, tokenString) {
		return nil, errors.New("token revoked")
	}

	user, err := s.repo.User.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, errors.New("user not found or disabled")
	}
	return user, nil
}

func (s *Service) isRevoked(ctx context.Context, tokenString string) bool {
	if s.redis != nil {
		n, err := s.redis.Exists(ctx, revokedKeyPrefix+tokenString).Result()
		if err == nil {
			return n > 0
		}
		// Redis 不可用时回退数据库
	}
	record, err := s.repo.User.GetTokenByValue(tokenString)
	if err != nil {
		// 无法确认令牌状态时按已撤销处理
		return true
	}
	return record == nil
}

func (s *Service) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
