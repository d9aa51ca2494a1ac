package entity

import "time"

// FoodWaste 损耗记录实体
type FoodWaste struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID     string    `gorm:"column:item_id;type:varchar(64);not null;index:idx_item_id"`
	Reason     string    `gorm:"column:reason;type:varchar(32);not null"`
	Quantity   float64   `gorm:"column:quantity;not null"`
	CostImpact float64   `gorm:"column:cost_impact;not null"`
	WasteDate  time.Time `gorm:"column:waste_date;not null;index:idx_waste_date"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (FoodWaste) TableName() string {
	return "food_waste"
}

// 损耗原因常量
const (
	WasteReasonExpired     = "expired"
	WasteReasonSpoiled     = "spoiled"
	WasteReasonOverstocked = "overstocked"
	WasteReasonDamaged     = "damaged"
)
