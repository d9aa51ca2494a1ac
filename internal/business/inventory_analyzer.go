package business

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	"kopik/common/model"
)

// InventoryAnalyzer 库存分析器
// 输入已是低库存商品集合（current_stock <= reorder_point），逐条产出告警与补货建议
type InventoryAnalyzer struct {
	rules *Ruleset
}

// NewInventoryAnalyzer 创建库存分析器实例
func NewInventoryAnalyzer(rules *Ruleset) *InventoryAnalyzer {
	return &InventoryAnalyzer{rules: rules}
}

// Analyze 执行库存分析
// 收益估算为一周消耗量的货值：cost_per_unit * daily_usage * 7
func (a *InventoryAnalyzer) Analyze(ctx context.Context, items []model.InventoryRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0, len(items))
	recs := make([]model.Recommendation, 0, len(items))

	for _, item := range items {
		// 1. 库存为零升级为高优先级
		priority := model.PriorityMedium
		if item.CurrentStock == 0 {
			priority = model.PriorityHigh
		}

		alert, err := model.NewAlert(
			model.AlertLowStock,
			fmt.Sprintf("Low stock: %s (%.0f units remaining)", item.Name, item.CurrentStock),
			priority,
			model.CategoryInventory,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build low stock alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		// 2. 置信度基于商品名生成确定性伪随机值，同一商品结果一致
		confidence := a.reorderConfidence(item.Name)
		impact := item.CostPerUnit * item.DailyUsage * a.rules.WeeklyConsumptionDays

		rec, err := model.NewRecommendation(
			fmt.Sprintf("Reorder %s immediately or source from alternative supplier", item.Name),
			confidence,
			impact,
			model.CategoryInventory,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build reorder recommendation failed: %w", err)
		}
		recs = append(recs, rec)
	}

	return alerts, recs, nil
}

// reorderConfidence 补货建议置信度，落在 [min, min+span) 区间
func (a *InventoryAnalyzer) reorderConfidence(name string) float64 {
	rng := rand.New(rand.NewSource(hashSeed(name)))
	return a.rules.ReorderConfidenceMin + rng.Float64()*a.rules.ReorderConfidenceSpan
}

// hashSeed 基于字符串生成确定性种子
func hashSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
