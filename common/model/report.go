package model

import "time"

// SummaryMetrics 汇总指标
type SummaryMetrics struct {
	TotalAlerts          int     `json:"total_alerts"`
	HighPriorityAlerts   int     `json:"high_priority_alerts"`
	TotalRecommendations int     `json:"total_recommendations"`
	TotalProfitImpact    float64 `json:"total_profit_impact"`
}

// DataOverview 输入数据概览（用于摘要 prompt 和 fallback）
type DataOverview struct {
	LowStockItems      int `json:"low_stock_items"`
	RecentWasteRecords int `json:"recent_waste_records"`
	UpcomingEvents     int `json:"upcoming_events"`
	PendingOrders      int `json:"pending_orders"`
}

// InventoryRollup 库存域汇总
type InventoryRollup struct {
	AlertsCount   int `json:"alerts_count"`
	LowStockItems int `json:"low_stock_items"`
	TotalItems    int `json:"total_items"`
}

// WasteRollup 损耗域汇总
type WasteRollup struct {
	AlertsCount     int     `json:"alerts_count"`
	TotalCostImpact float64 `json:"total_cost_impact"`
	WasteRecords    int     `json:"waste_records"`
}

// WeatherRollup 天气域汇总（无预报记录时两个字段为 null）
type WeatherRollup struct {
	AlertsCount      int      `json:"alerts_count"`
	CurrentCondition *string  `json:"current_condition"`
	Temperature      *float64 `json:"temperature"`
}

// EventsRollup 活动域汇总
type EventsRollup struct {
	AlertsCount             int `json:"alerts_count"`
	UpcomingEvents          int `json:"upcoming_events"`
	TotalExpectedAttendance int `json:"total_expected_attendance"`
}

// SalesRollup 销售域汇总
type SalesRollup struct {
	AlertsCount  int     `json:"alerts_count"`
	RecentSales  int     `json:"recent_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

// OrdersRollup 订单域汇总
type OrdersRollup struct {
	AlertsCount     int     `json:"alerts_count"`
	PendingOrders   int     `json:"pending_orders"`
	TotalOrderValue float64 `json:"total_order_value"`
}

// CategoryRollups 各业务域汇总（供展示层消费）
type CategoryRollups struct {
	Inventory InventoryRollup `json:"inventory"`
	Waste     WasteRollup     `json:"food_waste"`
	Weather   WeatherRollup   `json:"weather"`
	Events    EventsRollup    `json:"events"`
	Sales     SalesRollup     `json:"sales"`
	Orders    OrdersRollup    `json:"orders"`
}

// AnalysisRun 一次完整的分析运行结果
// 由聚合器创建，完成后不再修改（Narrative 由摘要服务在格式化前填入）
type AnalysisRun struct {
	Alerts          []Alert          `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations"`
	Metrics         SummaryMetrics   `json:"metrics"`
	Categories      CategoryRollups  `json:"categories"`
	Overview        DataOverview     `json:"data_overview"`
	Narrative       string           `json:"narrative"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
