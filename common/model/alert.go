package model

import "errors"

// 校验错误定义
var (
	ErrEmptyMessage    = errors.New("alert message cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
)

// Priority 告警优先级（有序枚举，HIGH 排最前）
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank 优先级排序权重（HIGH=0 < MEDIUM=1 < LOW=2）
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid 是否为合法优先级
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Category 业务域分类（封闭枚举）
type Category string

const (
	CategoryInventory Category = "inventory"
	CategoryWeather   Category = "weather"
	CategoryDemand    Category = "demand"
	CategoryWaste     Category = "waste"
	CategorySales     Category = "sales"
	CategoryOrders    Category = "orders"
	CategoryPromotion Category = "promotion"
)

// Valid 是否为合法分类
func (c Category) Valid() bool {
	switch c {
	case CategoryInventory, CategoryWeather, CategoryDemand,
		CategoryWaste, CategorySales, CategoryOrders, CategoryPromotion:
		return true
	}
	return false
}

// AlertKind 告警类型（用于标题映射和 fallback 摘要的语境判断）
type AlertKind string

const (
	AlertLowStock           AlertKind = "low_stock"
	AlertHighWaste          AlertKind = "high_waste"
	AlertExpirationWaste    AlertKind = "expiration_waste"
	AlertWeatherOpportunity AlertKind = "weather_opportunity"
	AlertUpcomingEvent      AlertKind = "upcoming_event"
	AlertDelayedOrders      AlertKind = "delayed_orders"
	AlertOverdueOrders      AlertKind = "overdue_orders"
	AlertHighPerformer      AlertKind = "high_performer"
	AlertUnderperformer     AlertKind = "underperformer"
)

// Alert 告警（分析器产出，构造后不可变，仅存在于单次分析运行内）
type Alert struct {
	Kind     AlertKind `json:"type"`
	Message  string    `json:"message"`
	Priority Priority  `json:"priority"`
	Category Category  `json:"category"`
}

// NewAlert 创建告警（构造时校验枚举合法性）
func NewAlert(kind AlertKind, message string, priority Priority, category Category) (Alert, error) {
	if message == "" {
		return Alert{}, ErrEmptyMessage
	}
	if !priority.Valid() {
		return Alert{}, ErrInvalidPriority
	}
	if !category.Valid() {
		return Alert{}, ErrInvalidCategory
	}

	return Alert{
		Kind:     kind,
		Message:  message,
		Priority: priority,
		Category: category,
	}, nil
}
