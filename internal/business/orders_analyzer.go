package business

import (
	"context"
	"fmt"
	"time"

	"kopik/common/model"
)

// OrdersAnalyzer 供应链订单分析器
// 识别延迟订单与逾期未达订单，两类互斥（延迟状态优先）
type OrdersAnalyzer struct {
	rules *Ruleset
}

// NewOrdersAnalyzer 创建订单分析器实例
func NewOrdersAnalyzer(rules *Ruleset) *OrdersAnalyzer {
	return &OrdersAnalyzer{rules: rules}
}

// Analyze 执行订单分析
func (a *OrdersAnalyzer) Analyze(ctx context.Context, now time.Time, orders []model.OrderRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0)
	recs := make([]model.Recommendation, 0)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		delayedCount int
		delayedCost  float64
		overdueCount int
		overdueCost  float64
	)

	for _, order := range orders {
		if order.Status == model.OrderStatusDelayed {
			delayedCount++
			delayedCost += order.TotalCost
		} else if order.ExpectedDelivery != nil && order.ExpectedDelivery.Before(today) {
			overdueCount++
			overdueCost += order.TotalCost
		}
	}

	// 1. 延迟订单
	if delayedCount > 0 {
		alert, err := model.NewAlert(
			model.AlertDelayedOrders,
			fmt.Sprintf("%d delayed orders worth $%.2f", delayedCount, delayedCost),
			model.PriorityHigh,
			model.CategoryOrders,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build delayed orders alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			"Contact suppliers for delayed orders and find alternative sources",
			85.0,
			delayedCost*a.rules.DelayedRecoveryRate,
			model.CategoryOrders,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build delayed orders recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	// 2. 逾期未达订单
	if overdueCount > 0 {
		alert, err := model.NewAlert(
			model.AlertOverdueOrders,
			fmt.Sprintf("%d overdue orders worth $%.2f", overdueCount, overdueCost),
			model.PriorityHigh,
			model.CategoryOrders,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build overdue orders alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			"Immediate follow-up on overdue deliveries and emergency sourcing",
			90.0,
			overdueCost*a.rules.OverdueRecoveryRate,
			model.CategoryOrders,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build overdue orders recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	return alerts, recs, nil
}
