package entity

import (
	"time"

	"gorm.io/datatypes"
)

// InventoryItem 库存商品实体
type InventoryItem struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID       string  `gorm:"column:item_id;type:varchar(64);not null;uniqueIndex:uk_item_id"`
	Name         string  `gorm:"column:name;type:varchar(128);not null;index:idx_name"`
	Category     string  `gorm:"column:category;type:varchar(64);not null"`
	CurrentStock float64 `gorm:"column:current_stock;not null"`
	Unit         string  `gorm:"column:unit;type:varchar(32);not null"`
	ReorderPoint float64 `gorm:"column:reorder_point"`
	DailyUsage   float64 `gorm:"column:daily_usage;not null"`
	CostPerUnit  float64 `gorm:"column:cost_per_unit;not null"`
	Supplier     string  `gorm:"column:supplier;type:varchar(128)"`
	SKU          string  `gorm:"column:sku;type:varchar(64)"`

	// 天气敏感度配置（如 {"hot": ["ice cream"], "rainy": ["soup"]}）
	WeatherSensitivity datatypes.JSON `gorm:"column:weather_sensitivity;type:json"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (InventoryItem) TableName() string {
	return "inventory_items"
}
