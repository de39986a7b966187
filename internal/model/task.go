package model

// DatasetTask 训练任务，指令/输入/输出三元组
// dataset_id 为软引用，不校验数据集是否存在
type DatasetTask struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	DatasetID string `gorm:"index" json:"dataset_id"`
	UserID    string `gorm:"index;size:36;not null" json:"user_id"`

	Instruction string `gorm:"type:text;not null" json:"instruction"`
	Input       string `gorm:"type:text;not null" json:"input"`
	Output      string `gorm:"type:text;not null" json:"output"`

	EvaluationCriteria string `gorm:"type:text" json:"evaluation_criteria,omitempty"`
	Meta               JSON   `gorm:"type:text" json:"meta"`
	IsTrainingExample  bool   `gorm:"default:false" json:"is_training_example"`

	AccessControl *AccessControl `gorm:"type:text" json:"access_control"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
	UpdatedAt int64 `gorm:"not null" json:"updated_at"`
}

// TableName 指定表名
func (DatasetTask) TableName() string {
	return "dataset_tasks"
}
