package access

import (
	"github.com/ashwinyue/dataset-hub/internal/model"
)

// ConfigPolicy 基于配置默认值的权限策略
// 用户记录上的 permissions 字段可按键覆盖默认值
type ConfigPolicy struct {
	defaults map[string]bool
}

// NewConfigPolicy 创建 ConfigPolicy
func NewConfigPolicy(defaults map[string]bool) *ConfigPolicy {
	if defaults == nil {
		defaults = map[string]bool{}
	}
	return &ConfigPolicy{defaults: defaults}
}

// HasPermission 实现 PermissionPolicy 接口
func (p *ConfigPolicy) HasPermission(user *model.User, permission string) bool {
	if user == nil {
		return false
	}
	if v, ok := user.Permissions[permission]; ok {
		if granted, ok := v.(bool); ok {
			return granted
		}
	}
	return p.defaults[permission]
}
