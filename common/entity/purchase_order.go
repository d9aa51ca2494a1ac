package entity

import "time"

// PurchaseOrder 供应商采购订单实体
type PurchaseOrder struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNo          string     `gorm:"column:order_no;type:varchar(64);not null;uniqueIndex:uk_order_no"`
	Supplier         string     `gorm:"column:supplier;type:varchar(128);not null"`
	Status           string     `gorm:"column:status;type:varchar(16);not null;index:idx_status"`
	ExpectedDelivery *time.Time `gorm:"column:expected_delivery"`
	TotalCost        float64    `gorm:"column:total_cost;not null"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (PurchaseOrder) TableName() string {
	return "orders"
}

// 订单状态常量
const (
	PurchaseOrderStatusPending   = "pending"
	PurchaseOrderStatusDelayed   = "delayed"
	PurchaseOrderStatusDelivered = "delivered"
	PurchaseOrderStatusCancelled = "cancelled"
)
