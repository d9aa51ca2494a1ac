package business

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func buildTestSnapshot(now time.Time) *model.Snapshot {
	trends := []model.SaleRecord{
		{ItemID: "Latte", TotalAmount: 500, QuantitySold: 100},
		{ItemID: "Muffin", TotalAmount: 100, QuantitySold: 50},
		{ItemID: "Tea", TotalAmount: 50, QuantitySold: 25},
		{ItemID: "Scone", TotalAmount: 5, QuantitySold: 2},
	}

	delivery := now.AddDate(0, 0, -2)

	return &model.Snapshot{
		Inventory: []model.InventoryRecord{
			{ItemID: "item-1", Name: "Coffee Beans", CurrentStock: 0, ReorderPoint: 20, DailyUsage: 10, CostPerUnit: 2.0},
		},
		Waste: []model.WasteRecord{
			{ItemID: "Lettuce", Reason: model.WasteReasonExpired, CostImpact: 60},
		},
		Weather: []model.WeatherRecord{
			{Condition: model.WeatherConditionRainy, TemperatureHigh: 55, PrecipitationChance: 90},
		},
		Events: []model.EventRecord{
			{Name: "City Marathon", EventType: model.EventTypeSports, StartDate: now.AddDate(0, 0, 2), ExpectedAttendance: 500, ImpactMultiplier: 1.0},
		},
		Sales:       trends,
		SalesTrends: trends,
		Orders: []model.OrderRecord{
			{OrderNo: "PO-1", Status: model.OrderStatusDelayed, TotalCost: 200},
			{OrderNo: "PO-2", Status: model.OrderStatusPending, ExpectedDelivery: &delivery, TotalCost: 300},
		},
	}
}

func TestCompositeAnalyzer_RankingInvariants(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	run, err := composite.Run(context.Background(), now, buildTestSnapshot(now))
	require.NoError(t, err)

	// 告警按优先级非降序排列
	require.NotEmpty(t, run.Alerts)
	for i := 1; i < len(run.Alerts); i++ {
		assert.LessOrEqual(t, run.Alerts[i-1].Priority.Rank(), run.Alerts[i].Priority.Rank())
	}

	// 建议按预估收益非升序排列
	require.NotEmpty(t, run.Recommendations)
	for i := 1; i < len(run.Recommendations); i++ {
		assert.GreaterOrEqual(t, run.Recommendations[i-1].EstimatedImpact, run.Recommendations[i].EstimatedImpact)
	}
}

func TestCompositeAnalyzer_MetricsConsistency(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	run, err := composite.Run(context.Background(), now, buildTestSnapshot(now))
	require.NoError(t, err)

	assert.Equal(t, len(run.Alerts), run.Metrics.TotalAlerts)
	assert.Equal(t, len(run.Recommendations), run.Metrics.TotalRecommendations)

	highCount := 0
	for _, alert := range run.Alerts {
		assert.True(t, alert.Priority.Valid())
		assert.True(t, alert.Category.Valid())
		if alert.Priority == model.PriorityHigh {
			highCount++
		}
	}
	assert.Equal(t, highCount, run.Metrics.HighPriorityAlerts)

	totalImpact := 0.0
	for _, rec := range run.Recommendations {
		assert.GreaterOrEqual(t, rec.EstimatedImpact, 0.0)
		assert.GreaterOrEqual(t, rec.Confidence, 0.0)
		assert.LessOrEqual(t, rec.Confidence, 100.0)
		totalImpact += rec.EstimatedImpact
	}
	assert.InDelta(t, totalImpact, run.Metrics.TotalProfitImpact, 0.001)

	// 各域告警计数合计等于总告警数
	rollupAlerts := run.Categories.Inventory.AlertsCount +
		run.Categories.Waste.AlertsCount +
		run.Categories.Weather.AlertsCount +
		run.Categories.Events.AlertsCount +
		run.Categories.Sales.AlertsCount +
		run.Categories.Orders.AlertsCount
	assert.Equal(t, run.Metrics.TotalAlerts, rollupAlerts)
}

func TestCompositeAnalyzer_Deterministic(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	snapshot := buildTestSnapshot(now)

	first, err := composite.Run(context.Background(), now, snapshot)
	require.NoError(t, err)
	second, err := composite.Run(context.Background(), now, snapshot)
	require.NoError(t, err)

	// 同一快照两次运行产出完全一致
	assert.Equal(t, first, second)
}

func TestCompositeAnalyzer_EmptySnapshot(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	run, err := composite.Run(context.Background(), now, &model.Snapshot{})
	require.NoError(t, err)

	assert.Empty(t, run.Alerts)
	assert.Empty(t, run.Recommendations)
	assert.Zero(t, run.Metrics.TotalAlerts)
	assert.Zero(t, run.Metrics.HighPriorityAlerts)
	assert.Zero(t, run.Metrics.TotalProfitImpact)
	assert.Nil(t, run.Categories.Weather.CurrentCondition)
	assert.Equal(t, now, run.GeneratedAt)
}

func TestCompositeAnalyzer_NilSnapshot(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)

	run, err := composite.Run(context.Background(), time.Now(), nil)
	require.Error(t, err)
	assert.Nil(t, run)
}

func TestCompositeAnalyzer_WeatherRollupFromLatestForecast(t *testing.T) {
	composite := NewCompositeAnalyzer(nil)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	snapshot := buildTestSnapshot(now)

	run, err := composite.Run(context.Background(), now, snapshot)
	require.NoError(t, err)

	require.NotNil(t, run.Categories.Weather.CurrentCondition)
	require.NotNil(t, run.Categories.Weather.Temperature)
	assert.Equal(t, model.WeatherConditionRainy, *run.Categories.Weather.CurrentCondition)
	assert.Equal(t, 55.0, *run.Categories.Weather.Temperature)
}
