package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func TestBuildInsights_AllRules(t *testing.T) {
	run := &model.AnalysisRun{
		Metrics: model.SummaryMetrics{
			HighPriorityAlerts: 3,
			TotalProfitImpact:  12500.4,
		},
		Categories: model.CategoryRollups{
			Waste:  model.WasteRollup{TotalCostImpact: 85},
			Events: model.EventsRollup{UpcomingEvents: 2, TotalExpectedAttendance: 2500},
			Orders: model.OrdersRollup{AlertsCount: 1},
		},
	}

	insights := buildInsights(run)
	require.Len(t, insights, 5)

	assert.Equal(t, "3 critical issues require immediate attention", insights[0])
	assert.Equal(t, "$12,500 in potential profit improvements identified", insights[1])
	assert.Equal(t, "$85 in food waste this week - prevention opportunities available", insights[2])
	assert.Equal(t, "2 upcoming events with 2,500 expected attendees", insights[3])
	assert.Equal(t, "Supply chain delays detected - alternative sourcing recommended", insights[4])
}

func TestBuildInsights_DefaultWhenNothingTriggers(t *testing.T) {
	insights := buildInsights(&model.AnalysisRun{})
	require.Len(t, insights, 1)
	assert.Equal(t, "All systems operating normally - no critical issues detected", insights[0])
}

func TestBuildInsights_ThresholdsAreStrict(t *testing.T) {
	// 收益 $1000、损耗 $50 为边界值，不触发对应洞察
	run := &model.AnalysisRun{
		Metrics: model.SummaryMetrics{TotalProfitImpact: 1000},
		Categories: model.CategoryRollups{
			Waste: model.WasteRollup{TotalCostImpact: 50},
		},
	}

	insights := buildInsights(run)
	require.Len(t, insights, 1)
	assert.Equal(t, "All systems operating normally - no critical issues detected", insights[0])
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "999", formatThousandsInt(999))
	assert.Equal(t, "1,000", formatThousandsInt(1000))
	assert.Equal(t, "1,234,567", formatThousandsInt(1234567))
	assert.Equal(t, "12,500", formatThousands(12500.4))
}
