package model

import "time"

// 记录源常量（与持久层枚举保持一致）
const (
	WasteReasonExpired = "expired"

	WeatherConditionRainy = "rainy"

	EventTypeSports   = "sports"
	EventTypeFestival = "festival"

	OrderStatusPending = "pending"
	OrderStatusDelayed = "delayed"
)

// InventoryRecord 库存快照记录
type InventoryRecord struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"current_stock"`
	Unit         string  `json:"unit"`
	ReorderPoint float64 `json:"reorder_point"`
	DailyUsage   float64 `json:"daily_usage"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Supplier     string  `json:"supplier"`
}

// WasteRecord 损耗记录
type WasteRecord struct {
	ItemID     string    `json:"item_id"`
	Reason     string    `json:"reason"`
	CostImpact float64   `json:"cost_impact"`
	WasteDate  time.Time `json:"waste_date"`
}

// WeatherRecord 天气预报记录
type WeatherRecord struct {
	Condition           string    `json:"condition"`
	TemperatureHigh     float64   `json:"temperature_high"`
	TemperatureLow      float64   `json:"temperature_low"`
	PrecipitationChance float64   `json:"precipitation_chance"`
	Date                time.Time `json:"date"`
}

// EventRecord 本地活动记录
type EventRecord struct {
	Name               string    `json:"name"`
	EventType          string    `json:"event_type"`
	StartDate          time.Time `json:"start_date"`
	ExpectedAttendance int       `json:"expected_attendance"`
	ImpactMultiplier   float64   `json:"impact_multiplier"`
}

// SaleRecord 销售流水记录
type SaleRecord struct {
	ItemID       string    `json:"item_id"`
	TotalAmount  float64   `json:"total_amount"`
	QuantitySold int       `json:"quantity_sold"`
	SaleDate     time.Time `json:"sale_date"`
}

// OrderRecord 供应商订单记录
type OrderRecord struct {
	OrderNo          string     `json:"order_no"`
	Supplier         string     `json:"supplier"`
	Status           string     `json:"status"`
	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	TotalCost        float64    `json:"total_cost"`
}

// Snapshot 一次分析运行的输入快照（六个域的时间窗口集合）
// 各窗口由记录源负责：
//   - Inventory: 低库存商品（current_stock <= reorder_point）
//   - Waste: 最近 7 天
//   - Weather: 最近 7 天，按日期倒序（第一条为最新预报）
//   - Events: 未来 14 天
//   - Sales: 最近 7 天；SalesTrends: 最近 30 天
//   - Orders: pending / delayed 状态
type Snapshot struct {
	Inventory   []InventoryRecord `json:"inventory"`
	Waste       []WasteRecord     `json:"food_waste"`
	Weather     []WeatherRecord   `json:"weather"`
	Events      []EventRecord     `json:"events"`
	Sales       []SaleRecord      `json:"sales"`
	SalesTrends []SaleRecord      `json:"sales_trends"`
	Orders      []OrderRecord     `json:"orders"`
}
