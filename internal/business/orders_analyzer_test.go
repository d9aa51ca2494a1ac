package business

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func TestOrdersAnalyzer_DelayedOrders(t *testing.T) {
	analyzer := NewOrdersAnalyzer(DefaultRuleset())
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	orders := []model.OrderRecord{
		{OrderNo: "PO-1", Status: model.OrderStatusDelayed, TotalCost: 120},
		{OrderNo: "PO-2", Status: model.OrderStatusDelayed, TotalCost: 80},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), now, orders)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Len(t, recs, 1)

	assert.Equal(t, model.AlertDelayedOrders, alerts[0].Kind)
	assert.Equal(t, model.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, "2 delayed orders worth $200.00", alerts[0].Message)

	// 挽回收益 = 延迟订单货值 * 10%
	assert.InDelta(t, 20.0, recs[0].EstimatedImpact, 0.001)
	assert.Equal(t, "Contact suppliers for delayed orders and find alternative sources", recs[0].Description)
}

func TestOrdersAnalyzer_OverdueOrders(t *testing.T) {
	analyzer := NewOrdersAnalyzer(DefaultRuleset())
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	orders := []model.OrderRecord{
		{OrderNo: "PO-1", Status: model.OrderStatusPending, ExpectedDelivery: &yesterday, TotalCost: 300},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), now, orders)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Len(t, recs, 1)

	assert.Equal(t, model.AlertOverdueOrders, alerts[0].Kind)
	assert.Equal(t, "1 overdue orders worth $300.00", alerts[0].Message)

	// 挽回收益 = 逾期订单货值 * 20%
	assert.InDelta(t, 60.0, recs[0].EstimatedImpact, 0.001)
}

func TestOrdersAnalyzer_DelayedStatusTakesPrecedenceOverOverdue(t *testing.T) {
	analyzer := NewOrdersAnalyzer(DefaultRuleset())
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	lastWeek := now.AddDate(0, 0, -7)

	// 延迟状态且已逾期的订单只计入延迟分组
	orders := []model.OrderRecord{
		{OrderNo: "PO-1", Status: model.OrderStatusDelayed, ExpectedDelivery: &lastWeek, TotalCost: 100},
	}

	alerts, _, err := analyzer.Analyze(context.Background(), now, orders)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, model.AlertDelayedOrders, alerts[0].Kind)
}

func TestOrdersAnalyzer_OnTimePendingOrdersNoOutput(t *testing.T) {
	analyzer := NewOrdersAnalyzer(DefaultRuleset())
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)
	today := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	orders := []model.OrderRecord{
		{OrderNo: "PO-1", Status: model.OrderStatusPending, ExpectedDelivery: &tomorrow, TotalCost: 100},
		// 当天到货不算逾期（按自然日比较）
		{OrderNo: "PO-2", Status: model.OrderStatusPending, ExpectedDelivery: &today, TotalCost: 200},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), now, orders)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}

func TestOrdersAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewOrdersAnalyzer(DefaultRuleset())

	alerts, recs, err := analyzer.Analyze(context.Background(), time.Now(), nil)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}
