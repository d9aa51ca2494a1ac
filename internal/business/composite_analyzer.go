package business

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"kopik/common/model"
)

// CompositeAnalyzer 聚合分析器
// 以固定域顺序（inventory → waste → weather → events → sales → orders）串行执行
// 各分析器，合并产出并按优先级/收益排序，任一分析器失败则整次运行失败
type CompositeAnalyzer struct {
	rules     *Ruleset
	inventory *InventoryAnalyzer
	waste     *WasteAnalyzer
	weather   *WeatherAnalyzer
	events    *EventsAnalyzer
	sales     *SalesAnalyzer
	orders    *OrdersAnalyzer
}

// NewCompositeAnalyzer 创建聚合分析器实例
func NewCompositeAnalyzer(rules *Ruleset) *CompositeAnalyzer {
	if rules == nil {
		rules = DefaultRuleset()
	}

	return &CompositeAnalyzer{
		rules:     rules,
		inventory: NewInventoryAnalyzer(rules),
		waste:     NewWasteAnalyzer(rules),
		weather:   NewWeatherAnalyzer(rules),
		events:    NewEventsAnalyzer(rules),
		sales:     NewSalesAnalyzer(rules),
		orders:    NewOrdersAnalyzer(rules),
	}
}

// Run 执行一次完整分析
// 相同快照输入产出完全一致（分析器均为纯函数，排序为稳定排序）
func (c *CompositeAnalyzer) Run(ctx context.Context, now time.Time, snapshot *model.Snapshot) (run *model.AnalysisRun, err error) {
	// 分析器异常不能击穿整个流程，统一转换为错误返回
	defer func() {
		if r := recover(); r != nil {
			run = nil
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()

	if snapshot == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	// 1. 按固定域顺序执行各分析器
	invAlerts, invRecs, err := c.inventory.Analyze(ctx, snapshot.Inventory)
	if err != nil {
		return nil, fmt.Errorf("inventory analysis failed: %w", err)
	}

	wasteAlerts, wasteRecs, err := c.waste.Analyze(ctx, snapshot.Waste)
	if err != nil {
		return nil, fmt.Errorf("waste analysis failed: %w", err)
	}

	weatherAlerts, weatherRecs, err := c.weather.Analyze(ctx, snapshot.Weather)
	if err != nil {
		return nil, fmt.Errorf("weather analysis failed: %w", err)
	}

	eventAlerts, eventRecs, err := c.events.Analyze(ctx, now, snapshot.Events)
	if err != nil {
		return nil, fmt.Errorf("events analysis failed: %w", err)
	}

	// 销售趋势分析使用 30 天窗口
	salesAlerts, salesRecs, err := c.sales.Analyze(ctx, snapshot.SalesTrends)
	if err != nil {
		return nil, fmt.Errorf("sales analysis failed: %w", err)
	}

	orderAlerts, orderRecs, err := c.orders.Analyze(ctx, now, snapshot.Orders)
	if err != nil {
		return nil, fmt.Errorf("orders analysis failed: %w", err)
	}

	// 2. 按域顺序合并
	alerts := make([]model.Alert, 0,
		len(invAlerts)+len(wasteAlerts)+len(weatherAlerts)+len(eventAlerts)+len(salesAlerts)+len(orderAlerts))
	alerts = append(alerts, invAlerts...)
	alerts = append(alerts, wasteAlerts...)
	alerts = append(alerts, weatherAlerts...)
	alerts = append(alerts, eventAlerts...)
	alerts = append(alerts, salesAlerts...)
	alerts = append(alerts, orderAlerts...)

	recs := make([]model.Recommendation, 0,
		len(invRecs)+len(wasteRecs)+len(weatherRecs)+len(eventRecs)+len(salesRecs)+len(orderRecs))
	recs = append(recs, invRecs...)
	recs = append(recs, wasteRecs...)
	recs = append(recs, weatherRecs...)
	recs = append(recs, eventRecs...)
	recs = append(recs, salesRecs...)
	recs = append(recs, orderRecs...)

	// 3. 排序：告警按优先级升序，建议按预估收益降序（同序保持域顺序）
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority.Rank() < alerts[j].Priority.Rank()
	})
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].EstimatedImpact > recs[j].EstimatedImpact
	})

	// 4. 汇总指标
	highPriority := 0
	for _, alert := range alerts {
		if alert.Priority == model.PriorityHigh {
			highPriority++
		}
	}

	totalImpact := 0.0
	for _, rec := range recs {
		totalImpact += rec.EstimatedImpact
	}

	// 5. 各域汇总
	categories := c.buildRollups(snapshot,
		len(invAlerts), len(wasteAlerts), len(weatherAlerts),
		len(eventAlerts), len(salesAlerts), len(orderAlerts))

	return &model.AnalysisRun{
		Alerts:          alerts,
		Recommendations: recs,
		Metrics: model.SummaryMetrics{
			TotalAlerts:          len(alerts),
			HighPriorityAlerts:   highPriority,
			TotalRecommendations: len(recs),
			TotalProfitImpact:    totalImpact,
		},
		Categories: categories,
		Overview: model.DataOverview{
			LowStockItems:      len(snapshot.Inventory),
			RecentWasteRecords: len(snapshot.Waste),
			UpcomingEvents:     len(snapshot.Events),
			PendingOrders:      len(snapshot.Orders),
		},
		GeneratedAt: now,
	}, nil
}

// buildRollups 构建各域汇总数据
func (c *CompositeAnalyzer) buildRollups(snapshot *model.Snapshot,
	invAlerts, wasteAlerts, weatherAlerts, eventAlerts, salesAlerts, orderAlerts int) model.CategoryRollups {

	totalWasteCost := 0.0
	for _, w := range snapshot.Waste {
		totalWasteCost += w.CostImpact
	}

	weatherRollup := model.WeatherRollup{AlertsCount: weatherAlerts}
	if len(snapshot.Weather) > 0 {
		current := snapshot.Weather[0]
		weatherRollup.CurrentCondition = &current.Condition
		weatherRollup.Temperature = &current.TemperatureHigh
	}

	totalAttendance := 0
	for _, e := range snapshot.Events {
		totalAttendance += e.ExpectedAttendance
	}

	totalRevenue := 0.0
	for _, s := range snapshot.Sales {
		totalRevenue += s.TotalAmount
	}

	totalOrderValue := 0.0
	for _, o := range snapshot.Orders {
		totalOrderValue += o.TotalCost
	}

	return model.CategoryRollups{
		Inventory: model.InventoryRollup{
			AlertsCount:   invAlerts,
			LowStockItems: len(snapshot.Inventory),
			TotalItems:    len(snapshot.Inventory),
		},
		Waste: model.WasteRollup{
			AlertsCount:     wasteAlerts,
			TotalCostImpact: roundTo2Decimals(totalWasteCost),
			WasteRecords:    len(snapshot.Waste),
		},
		Weather: weatherRollup,
		Events: model.EventsRollup{
			AlertsCount:             eventAlerts,
			UpcomingEvents:          len(snapshot.Events),
			TotalExpectedAttendance: totalAttendance,
		},
		Sales: model.SalesRollup{
			AlertsCount:  salesAlerts,
			RecentSales:  len(snapshot.Sales),
			TotalRevenue: roundTo2Decimals(totalRevenue),
		},
		Orders: model.OrdersRollup{
			AlertsCount:     orderAlerts,
			PendingOrders:   len(snapshot.Orders),
			TotalOrderValue: roundTo2Decimals(totalOrderValue),
		},
	}
}

// roundTo2Decimals 四舍五入到两位小数
func roundTo2Decimals(f float64) float64 {
	return math.Round(f*100) / 100
}
