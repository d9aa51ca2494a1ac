package presenter

import (
	"fmt"

	"kopik/common/model"
)

// 关键洞察的触发阈值
const (
	insightImpactThreshold    = 1000.0
	insightWasteCostThreshold = 50.0
)

// buildInsights 从汇总数据生成关键经营洞察
func buildInsights(run *model.AnalysisRun) []string {
	insights := make([]string, 0, 5)

	// 1. 高优先级告警
	if run.Metrics.HighPriorityAlerts > 0 {
		insights = append(insights,
			fmt.Sprintf("%d critical issues require immediate attention", run.Metrics.HighPriorityAlerts))
	}

	// 2. 收益空间
	if run.Metrics.TotalProfitImpact > insightImpactThreshold {
		insights = append(insights,
			fmt.Sprintf("$%s in potential profit improvements identified",
				formatThousands(run.Metrics.TotalProfitImpact)))
	}

	// 3. 损耗成本
	if run.Categories.Waste.TotalCostImpact > insightWasteCostThreshold {
		insights = append(insights,
			fmt.Sprintf("$%.0f in food waste this week - prevention opportunities available",
				run.Categories.Waste.TotalCostImpact))
	}

	// 4. 临近活动
	if run.Categories.Events.UpcomingEvents > 0 {
		insights = append(insights,
			fmt.Sprintf("%d upcoming events with %s expected attendees",
				run.Categories.Events.UpcomingEvents,
				formatThousandsInt(run.Categories.Events.TotalExpectedAttendance)))
	}

	// 5. 供应链
	if run.Categories.Orders.AlertsCount > 0 {
		insights = append(insights, "Supply chain delays detected - alternative sourcing recommended")
	}

	if len(insights) == 0 {
		insights = append(insights, "All systems operating normally - no critical issues detected")
	}

	return insights
}

// formatThousands 千分位格式化（取整）
func formatThousands(f float64) string {
	return formatThousandsInt(int(f + 0.5))
}

// formatThousandsInt 整数千分位格式化
func formatThousandsInt(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
