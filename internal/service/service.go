// Package service 组装各业务服务
package service

import (
	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/dataset-hub/internal/access"
	"github.com/ashwinyue/dataset-hub/internal/config"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/service/auth"
	"github.com/ashwinyue/dataset-hub/internal/service/dataset"
	"github.com/ashwinyue/dataset-hub/internal/service/evaluation"
	"github.com/ashwinyue/dataset-hub/internal/service/task"
)

// Services 服务集合
type Services struct {
	Auth       *auth.Service
	Dataset    *dataset.Service
	Task       *task.Service
	Evaluation *evaluation.Service
}

// NewServices 创建所有服务
// 三类实体共用同一个 Guard，授权规则只实现一次
func NewServices(repos *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	policy := access.NewConfigPolicy(map[string]bool{
		access.PermissionWorkspaceDatasets: cfg.Permissions.WorkspaceDatasets,
	})
	guard := access.NewGuard(policy, repos.User)

	authService, err := auth.NewService(repos, cfg, redisClient)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:       authService,
		Dataset:    dataset.NewService(repos, guard),
		Task:       task.NewService(repos, guard),
		Evaluation: evaluation.NewService(repos, guard),
	}, nil
}
