package business

import (
	"context"
	"fmt"
	"sort"

	"kopik/common/model"
)

// SalesAnalyzer 销售趋势分析器
// 按单品聚合 30 天营收，识别头部依赖与尾部滞销
// 单品数不足 4 时样本太小，整个分析器不产出任何结果
type SalesAnalyzer struct {
	rules *Ruleset
}

// NewSalesAnalyzer 创建销售分析器实例
func NewSalesAnalyzer(rules *Ruleset) *SalesAnalyzer {
	return &SalesAnalyzer{rules: rules}
}

type itemSales struct {
	itemID   string
	revenue  float64
	quantity int
}

// Analyze 执行销售趋势分析
func (a *SalesAnalyzer) Analyze(ctx context.Context, sales []model.SaleRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0)
	recs := make([]model.Recommendation, 0)

	if len(sales) == 0 {
		return alerts, recs, nil
	}

	// 1. 按单品聚合营收与销量
	byItem := make(map[string]*itemSales)
	totalRevenue := 0.0

	for _, sale := range sales {
		agg, ok := byItem[sale.ItemID]
		if !ok {
			agg = &itemSales{itemID: sale.ItemID}
			byItem[sale.ItemID] = agg
		}
		agg.revenue += sale.TotalAmount
		agg.quantity += sale.QuantitySold
		totalRevenue += sale.TotalAmount
	}

	// 2. 单品数不足时跳过整个分析
	if len(byItem) < a.rules.MinItemsForLaggards {
		return alerts, recs, nil
	}

	// 3. 按营收降序排列（营收相同时按单品 ID 保证顺序稳定）
	sorted := make([]*itemSales, 0, len(byItem))
	for _, agg := range byItem {
		sorted = append(sorted, agg)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].revenue != sorted[j].revenue {
			return sorted[i].revenue > sorted[j].revenue
		}
		return sorted[i].itemID < sorted[j].itemID
	})

	// 4. 头部依赖：单品营收占比超 30%
	top := sorted[0]
	if top.revenue > totalRevenue*a.rules.TopSellerShare {
		alert, err := model.NewAlert(
			model.AlertHighPerformer,
			fmt.Sprintf("Top seller %s generates $%.2f (high dependency)", top.itemID, top.revenue),
			model.PriorityMedium,
			model.CategorySales,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build high performer alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			fmt.Sprintf("Ensure adequate stock of top performer %s", top.itemID),
			95.0,
			top.revenue*a.rules.TopSellerImpactRate,
			model.CategorySales,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build top seller recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	// 5. 尾部滞销：取末三位，营收占比不足 2% 的告警
	lowRevenueLimit := totalRevenue * a.rules.LowRevenueShare
	for _, agg := range sorted[len(sorted)-3:] {
		if agg.revenue >= lowRevenueLimit {
			continue
		}

		alert, err := model.NewAlert(
			model.AlertUnderperformer,
			fmt.Sprintf("Low sales for %s: only $%.2f", agg.itemID, agg.revenue),
			model.PriorityLow,
			model.CategorySales,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build underperformer alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		rec, err := model.NewRecommendation(
			fmt.Sprintf("Consider promoting or discontinuing %s", agg.itemID),
			70.0,
			a.rules.UnderperformerImpact,
			model.CategorySales,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build underperformer recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	return alerts, recs, nil
}
