package model

import (
	"database/sql/driver"
	"encoding/json"
)

// DatasetMeta 数据集元数据
type DatasetMeta struct {
	Description string `json:"description,omitempty"`
	// Extra 承载未预期的扩展字段
	Extra JSON `json:"extra,omitempty"`
}

// Value 实现 driver.Valuer 接口
func (m DatasetMeta) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (m *DatasetMeta) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, m)
}

// Dataset 数据集，ID 由调用方指定
type Dataset struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;size:36;not null" json:"user_id"`

	Name             string `gorm:"not null" json:"name"`
	Version          string `gorm:"default:'1.0'" json:"version"`
	EvaluationMethod string `gorm:"default:'Criteria Based'" json:"evaluation_method"`

	Meta          DatasetMeta    `gorm:"type:text" json:"meta"`
	AccessControl *AccessControl `gorm:"type:text" json:"access_control"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
	UpdatedAt int64 `gorm:"not null" json:"updated_at"`
}

// TableName 指定表名
func (Dataset) TableName() string {
	return "datasets"
}
