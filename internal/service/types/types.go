// Package types 定义服务层共享的错误类别
package types

import "errors"

// 服务层错误类别，处理器据此映射响应状态
// 读路径对不可访问的记录统一返回 ErrNotFound，不暴露记录是否存在
var (
	// ErrNotFound 记录不存在，或读取时对调用方不可见
	ErrNotFound = errors.New("we could not find what you're looking for")

	// ErrUnauthorized 已认证但权限不足
	ErrUnauthorized = errors.New("401 unauthorized")

	// ErrAccessProhibited 数据集更新/删除被拒绝时使用的变体
	ErrAccessProhibited = errors.New("you do not have permission to access this resource")

	// ErrDuplicateID 数据集 ID 已被占用
	ErrDuplicateID = errors.New("dataset id already taken")

	// ErrWriteFailed 存储层写入失败，不再细分
	ErrWriteFailed = errors.New("something went wrong while writing the record")
)
