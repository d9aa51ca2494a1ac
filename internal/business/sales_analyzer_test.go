package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func TestSalesAnalyzer_TopSellerDependency(t *testing.T) {
	analyzer := NewSalesAnalyzer(DefaultRuleset())

	sales := []model.SaleRecord{
		{ItemID: "Latte", TotalAmount: 300, QuantitySold: 60},
		{ItemID: "Latte", TotalAmount: 200, QuantitySold: 40},
		{ItemID: "Muffin", TotalAmount: 100, QuantitySold: 50},
		{ItemID: "Tea", TotalAmount: 50, QuantitySold: 25},
		{ItemID: "Scone", TotalAmount: 5, QuantitySold: 2},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), sales)
	require.NoError(t, err)

	// Latte 合计 500，占 655 总营收的 76%，触发头部依赖
	require.NotEmpty(t, alerts)
	assert.Equal(t, model.AlertHighPerformer, alerts[0].Kind)
	assert.Equal(t, model.PriorityMedium, alerts[0].Priority)
	assert.Equal(t, "Top seller Latte generates $500.00 (high dependency)", alerts[0].Message)

	// 备货建议收益 = 头部营收 * 10%
	assert.Equal(t, "Ensure adequate stock of top performer Latte", recs[0].Description)
	assert.InDelta(t, 50.0, recs[0].EstimatedImpact, 0.001)
	assert.Equal(t, 95.0, recs[0].Confidence)
}

func TestSalesAnalyzer_Underperformers(t *testing.T) {
	analyzer := NewSalesAnalyzer(DefaultRuleset())

	sales := []model.SaleRecord{
		{ItemID: "Latte", TotalAmount: 500, QuantitySold: 100},
		{ItemID: "Muffin", TotalAmount: 100, QuantitySold: 50},
		{ItemID: "Tea", TotalAmount: 50, QuantitySold: 25},
		{ItemID: "Scone", TotalAmount: 5, QuantitySold: 2},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), sales)
	require.NoError(t, err)

	// 总营收 655，尾部阈值 13.10，仅 Scone 触发滞销告警
	var lowAlerts []model.Alert
	for _, alert := range alerts {
		if alert.Kind == model.AlertUnderperformer {
			lowAlerts = append(lowAlerts, alert)
		}
	}
	require.Len(t, lowAlerts, 1)
	assert.Equal(t, model.PriorityLow, lowAlerts[0].Priority)
	assert.Equal(t, "Low sales for Scone: only $5.00", lowAlerts[0].Message)

	var lowRec *model.Recommendation
	for i := range recs {
		if recs[i].Description == "Consider promoting or discontinuing Scone" {
			lowRec = &recs[i]
		}
	}
	require.NotNil(t, lowRec)
	assert.InDelta(t, 50.0, lowRec.EstimatedImpact, 0.001)
}

func TestSalesAnalyzer_TooFewItemsNoOutput(t *testing.T) {
	analyzer := NewSalesAnalyzer(DefaultRuleset())

	// 单品数少于 4 时整个分析器不产出，即使头部营收占比超阈值
	sales := []model.SaleRecord{
		{ItemID: "Latte", TotalAmount: 500, QuantitySold: 100},
		{ItemID: "Muffin", TotalAmount: 150, QuantitySold: 75},
		{ItemID: "Tea", TotalAmount: 2, QuantitySold: 1},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), sales)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}

func TestSalesAnalyzer_BalancedSalesNoOutput(t *testing.T) {
	analyzer := NewSalesAnalyzer(DefaultRuleset())

	sales := []model.SaleRecord{
		{ItemID: "A", TotalAmount: 100, QuantitySold: 10},
		{ItemID: "B", TotalAmount: 100, QuantitySold: 10},
		{ItemID: "C", TotalAmount: 100, QuantitySold: 10},
		{ItemID: "D", TotalAmount: 100, QuantitySold: 10},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), sales)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}

func TestSalesAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewSalesAnalyzer(DefaultRuleset())

	alerts, recs, err := analyzer.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}
