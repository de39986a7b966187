package model

import (
	"database/sql/driver"
	"encoding/json"
)

// PermissionGrant 某一操作类别下被授权的用户与群组
type PermissionGrant struct {
	GroupIDs []string `json:"group_ids"`
	UserIDs  []string `json:"user_ids"`
}

// AccessControl 记录级访问控制列表
// 为 nil 时表示仅属主和管理员可访问
type AccessControl struct {
	Read  PermissionGrant `json:"read"`
	Write PermissionGrant `json:"write"`
}

// Value 实现 driver.Valuer 接口
func (a *AccessControl) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (a *AccessControl) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, a)
}
