package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation 持久化建议实体
// 分析运行产出的建议在落库时获得 ID 和时间戳
type Recommendation struct {
	ID             int64   `gorm:"column:id;primaryKey"`
	Priority       string  `gorm:"column:priority;type:varchar(16);not null"`
	Title          string  `gorm:"column:title;type:varchar(128);not null;index:idx_title"`
	Description    string  `gorm:"column:description;type:text;not null"`
	ProfitImpact   float64 `gorm:"column:profit_impact"`
	Confidence     float64 `gorm:"column:confidence;not null"`
	ActionRequired bool    `gorm:"column:action_required;default:false"`
	Category       string  `gorm:"column:category;type:varchar(32)"`

	// 触发来源与标签（JSON 数组）
	TriggerSources datatypes.JSON `gorm:"column:trigger_sources;type:json"`
	Tags           datatypes.JSON `gorm:"column:tags;type:json"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Recommendation) TableName() string {
	return "recommendations"
}
