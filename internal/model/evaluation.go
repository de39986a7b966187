package model

import (
	"database/sql/driver"
	"encoding/json"
)

// EvaluationStatusPending 评估初始状态
const EvaluationStatusPending = "pending"

// EvaluationMeta 评估元数据，模型描述符加任意扩展字段
type EvaluationMeta struct {
	TargetModel JSON `json:"target_model,omitempty"`
	JudgeModel  JSON `json:"judge_model,omitempty"`
	Extra       JSON `json:"extra,omitempty"`
}

// Value 实现 driver.Valuer 接口
func (m EvaluationMeta) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (m *EvaluationMeta) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, m)
}

// DatasetEvaluation 针对数据集任务的一次评估运行
// passed_task_ids 不强制为 task_ids 的子集
type DatasetEvaluation struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	DatasetID string `gorm:"index" json:"dataset_id"`
	UserID    string `gorm:"index;size:36;not null" json:"user_id"`

	TargetModelID string `json:"target_model_id,omitempty"`
	JudgeModelID  string `json:"judge_model_id,omitempty"`

	Meta   EvaluationMeta `gorm:"type:text" json:"meta"`
	Status string         `gorm:"default:'pending'" json:"status"`

	TaskIDs       StringList `gorm:"type:text" json:"task_ids"`
	PassedTaskIDs StringList `gorm:"type:text" json:"passed_task_ids"`

	AccessControl *AccessControl `gorm:"type:text" json:"access_control"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
	UpdatedAt int64 `gorm:"not null" json:"updated_at"`
}

// TableName 指定表名
func (DatasetEvaluation) TableName() string {
	return "dataset_evaluations"
}
