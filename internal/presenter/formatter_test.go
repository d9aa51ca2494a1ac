package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func TestFormatReport_AlertMapping(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	run := &model.AnalysisRun{
		Alerts: []model.Alert{
			{Kind: model.AlertLowStock, Message: "Low stock: Milk (0 units remaining)", Priority: model.PriorityHigh, Category: model.CategoryInventory},
			{Kind: model.AlertDelayedOrders, Message: "2 delayed orders worth $200.00", Priority: model.PriorityHigh, Category: model.CategoryOrders},
			{Kind: "mystery", Message: "something odd", Priority: model.PriorityLow, Category: model.CategorySales},
		},
		GeneratedAt: now,
	}

	report := FormatReport(run)
	require.Len(t, report.Alerts, 3)

	// ID 从 1 顺序编号，排序保持输入顺序
	assert.Equal(t, 1, report.Alerts[0].ID)
	assert.Equal(t, 2, report.Alerts[1].ID)
	assert.Equal(t, 3, report.Alerts[2].ID)

	assert.Equal(t, "Low Inventory Alert", report.Alerts[0].Title)
	assert.Equal(t, "Supply Chain Issue", report.Alerts[1].Title)
	// 未知类型落到通用标题
	assert.Equal(t, "Business Alert", report.Alerts[2].Title)

	for _, alert := range report.Alerts {
		assert.True(t, alert.Actionable)
		assert.Equal(t, now, alert.Timestamp)
	}

	assert.True(t, report.Success)
	assert.Equal(t, now, report.Timestamp)
}

func TestFormatReport_RecommendationTitles(t *testing.T) {
	cases := []struct {
		description string
		title       string
	}{
		{"Reorder Coffee Beans immediately or source from alternative supplier", "Inventory Reorder"},
		{"Increase inventory by 50% for City Marathon", "Scale Inventory"},
		{"Reduce food waste with portion control for Lettuce", "Waste Reduction"},
		{"Implement portion control and demand forecasting for Lettuce", "Business Optimization"},
		{"Prepare for rainy weather demand shifts", "Weather Adaptation"},
		{"Prepare special menu items for the event weekend", "Event Preparation"},
		{"Contact suppliers for delayed orders and find alternative sources", "Supplier Management"},
		{"Consider promoting or discontinuing Scone", "Business Optimization"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.title, recommendationTitle(tc.description), tc.description)
	}
}

func TestFormatReport_ImplementationTime(t *testing.T) {
	assert.Equal(t, "immediate", implementationTime("Reorder now immediately", 80))
	assert.Equal(t, "immediate", implementationTime("Ensure adequate stock of top performer Latte", 95))
	assert.Equal(t, "1-2 days", implementationTime("Reorder Coffee Beans or source from alternative supplier", 80))
	assert.Equal(t, "1-2 days", implementationTime("Contact suppliers for delayed orders", 85))
	assert.Equal(t, "3-5 days", implementationTime("Increase cold beverage and ice cream inventory", 80))
	assert.Equal(t, "1 week", implementationTime("Consider promoting or discontinuing Scone", 70))
}

func TestFormatReport_Tags(t *testing.T) {
	tags := recommendationTags("Reorder inventory immediately from supplier", 1500)
	assert.Contains(t, tags, "inventory")
	assert.Contains(t, tags, "supply-chain")
	assert.Contains(t, tags, "urgent")
	assert.Contains(t, tags, "high-impact")
	assert.NotContains(t, tags, "medium-impact")

	tags = recommendationTags("Prepare special menu items for the weather event", 500)
	assert.Contains(t, tags, "weather")
	assert.Contains(t, tags, "events")
	assert.Contains(t, tags, "medium-impact")

	tags = recommendationTags("Implement waste tracking", 50)
	assert.Contains(t, tags, "sustainability")
	assert.NotContains(t, tags, "medium-impact")
	assert.NotContains(t, tags, "high-impact")
}

func TestFormatReport_DerivedPriorityAndRounding(t *testing.T) {
	run := &model.AnalysisRun{
		Recommendations: []model.Recommendation{
			{Description: "Increase inventory by 100% for Summer Festival", Confidence: 85.5551, EstimatedImpact: 15000.251, Category: model.CategoryDemand},
			{Description: "Consider promoting or discontinuing Scone", Confidence: 70, EstimatedImpact: 50, Category: model.CategorySales},
		},
	}

	report := FormatReport(run)
	require.Len(t, report.Recommendations, 2)

	// 收益超 $500 派生高优先级，否则中优先级
	assert.Equal(t, model.PriorityHigh, report.Recommendations[0].Priority)
	assert.Equal(t, model.PriorityMedium, report.Recommendations[1].Priority)

	// 置信度一位小数、收益两位小数
	assert.Equal(t, 85.6, report.Recommendations[0].Confidence)
	assert.Equal(t, 15000.25, report.Recommendations[0].ProfitImpact)
}

func TestFormatReport_DoesNotSetAnalysisCount(t *testing.T) {
	report := FormatReport(&model.AnalysisRun{})
	assert.Zero(t, report.AnalysisCount)
}
