package entity

import "time"

// Sale 销售流水实体
type Sale struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID       string    `gorm:"column:item_id;type:varchar(64);not null;index:idx_item_sale_date"`
	QuantitySold int       `gorm:"column:quantity_sold;not null"`
	UnitPrice    float64   `gorm:"column:unit_price;not null"`
	TotalAmount  float64   `gorm:"column:total_amount;not null"`
	SaleDate     time.Time `gorm:"column:sale_date;not null;index:idx_item_sale_date;index:idx_sale_date"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Sale) TableName() string {
	return "sales"
}
