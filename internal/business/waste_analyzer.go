package business

import (
	"context"
	"fmt"

	"kopik/common/model"
)

// WasteAnalyzer 损耗分析器
// 按商品和损耗原因分组统计周损耗金额，超阈值时产出告警与整改建议
type WasteAnalyzer struct {
	rules *Ruleset
}

// NewWasteAnalyzer 创建损耗分析器实例
func NewWasteAnalyzer(rules *Ruleset) *WasteAnalyzer {
	return &WasteAnalyzer{rules: rules}
}

// Analyze 执行损耗分析
func (a *WasteAnalyzer) Analyze(ctx context.Context, waste []model.WasteRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0)
	recs := make([]model.Recommendation, 0)

	if len(waste) == 0 {
		return alerts, recs, nil
	}

	// 1. 按商品分组累计损耗金额（记录首次出现顺序保证输出确定）
	costByItem := make(map[string]float64)
	itemOrder := make([]string, 0)
	costByReason := make(map[string]float64)

	for _, w := range waste {
		if _, seen := costByItem[w.ItemID]; !seen {
			itemOrder = append(itemOrder, w.ItemID)
		}
		costByItem[w.ItemID] += w.CostImpact
		costByReason[w.Reason] += w.CostImpact
	}

	// 2. 高损耗商品告警
	for _, itemID := range itemOrder {
		cost := costByItem[itemID]
		if cost <= a.rules.HighWasteThreshold {
			continue
		}

		alert, err := model.NewAlert(
			model.AlertHighWaste,
			fmt.Sprintf("High waste detected for %s: $%.2f in the last week", itemID, cost),
			model.PriorityHigh,
			model.CategoryWaste,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build high waste alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			fmt.Sprintf("Implement portion control and demand forecasting for %s", itemID),
			80.0,
			cost*a.rules.WasteReductionRate,
			model.CategoryWaste,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build waste recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	// 3. 过期损耗模式分析
	if expiredCost, ok := costByReason[model.WasteReasonExpired]; ok && expiredCost > a.rules.ExpiredWasteThreshold {
		alert, err := model.NewAlert(
			model.AlertExpirationWaste,
			fmt.Sprintf("High expiration waste: $%.2f in expired products", expiredCost),
			model.PriorityMedium,
			model.CategoryWaste,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build expiration alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			"Implement FIFO rotation and better inventory tracking",
			85.0,
			expiredCost*a.rules.ExpiredReductionRate,
			model.CategoryWaste,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build FIFO recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	return alerts, recs, nil
}
