// Package access 实现记录级访问控制：属主/角色/ACL 三级判定
package access

import (
	"github.com/ashwinyue/dataset-hub/internal/model"
)

// PermissionWorkspaceDatasets 数据集工作区的创建权限键
const PermissionWorkspaceDatasets = "workspace.datasets"

// 操作类别
const (
	PermissionRead  = "read"
	PermissionWrite = "write"
)

// PermissionPolicy 全局权限策略，按权限键判断用户是否被授权
type PermissionPolicy interface {
	HasPermission(user *model.User, permission string) bool
}

// GroupResolver 解析用户所属群组
type GroupResolver interface {
	GroupIDs(userID string) ([]string, error)
}

// Guard 授权判定，三类实体共用同一套规则
type Guard struct {
	policy PermissionPolicy
	groups GroupResolver
}

// NewGuard 创建 Guard
func NewGuard(policy PermissionPolicy, groups GroupResolver) *Guard {
	return &Guard{policy: policy, groups: groups}
}

// CanCreate 创建权限：管理员，或全局策略授予 workspace.datasets
func (g *Guard) CanCreate(user *model.User) bool {
	if user.IsAdmin() {
		return true
	}
	return g.policy.HasPermission(user, PermissionWorkspaceDatasets)
}

// CanRead 读权限：管理员、属主，或 ACL 授予 read
func (g *Guard) CanRead(user *model.User, ownerID string, acl *model.AccessControl) bool {
	if user.IsAdmin() || user.ID == ownerID {
		return true
	}
	return HasAccess(user.ID, g.resolveGroups(user.ID), PermissionRead, acl)
}

// CanWrite 写权限：管理员、属主，或 ACL 授予 write
// 更新与删除使用同一判定
func (g *Guard) CanWrite(user *model.User, ownerID string, acl *model.AccessControl) bool {
	if user.IsAdmin() || user.ID == ownerID {
		return true
	}
	return HasAccess(user.ID, g.resolveGroups(user.ID), PermissionWrite, acl)
}

func (g *Guard) resolveGroups(userID string) []string {
	if g.groups == nil {
		return nil
	}
	ids, err := g.groups.GroupIDs(userID)
	if err != nil {
		return nil
	}
	return ids
}

// HasAccess 判断 ACL 是否对用户授予指定操作类别
// ACL 为 nil 时一律拒绝，访问完全由角色加属主关系决定
func HasAccess(userID string, groupIDs []string, permission string, acl *model.AccessControl) bool {
	if acl == nil {
		return false
	}

	var grant model.PermissionGrant
	switch permission {
	case PermissionRead:
		grant = acl.Read
	case PermissionWrite:
		grant = acl.Write
	default:
		return false
	}

	for _, id := range grant.UserIDs {
		if id == userID {
			return true
		}
	}
	for _, gid := range grant.GroupIDs {
		for _, own := range groupIDs {
			if own == gid {
				return true
			}
		}
	}
	return false
}
