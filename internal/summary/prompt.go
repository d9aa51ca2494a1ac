package summary

import (
	"fmt"
	"strings"

	"kopik/common/model"
)

// buildPrompt 构建摘要 prompt
// 嵌入汇总指标、数据概览、前三条告警（已按优先级排序）与前三条建议（已按收益排序）
func buildPrompt(run *model.AnalysisRun) string {
	var b strings.Builder

	b.WriteString("\nAnalyze this business intelligence data and provide a concise summary for restaurant/cafe operators:\n\n")

	b.WriteString("**Current Situation:**\n")
	fmt.Fprintf(&b, "- %d alerts detected (%d high priority)\n",
		run.Metrics.TotalAlerts, run.Metrics.HighPriorityAlerts)
	fmt.Fprintf(&b, "- %d recommendations generated\n", run.Metrics.TotalRecommendations)
	fmt.Fprintf(&b, "- Potential profit impact: $%.0f\n\n", run.Metrics.TotalProfitImpact)

	b.WriteString("**Data Sources Analyzed:**\n")
	fmt.Fprintf(&b, "- %d low stock items\n", run.Overview.LowStockItems)
	fmt.Fprintf(&b, "- %d recent waste records\n", run.Overview.RecentWasteRecords)
	fmt.Fprintf(&b, "- %d upcoming events\n", run.Overview.UpcomingEvents)
	fmt.Fprintf(&b, "- %d pending orders\n\n", run.Overview.PendingOrders)

	b.WriteString("**Key Alerts:**\n")
	for i, alert := range run.Alerts {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "- %s (Priority: %s)\n", alert.Message, alert.Priority)
	}

	b.WriteString("\n**Top Recommendations:**\n")
	for i, rec := range run.Recommendations {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "- %s ($%.0f impact, %.0f%% confidence)\n",
			rec.Description, rec.EstimatedImpact, rec.Confidence)
	}

	b.WriteString(`
Generate a 2-3 sentence executive summary focusing on:
1. Most critical issues requiring immediate attention
2. Biggest opportunities for revenue/cost savings
3. Overall business health assessment

Keep it concise and action-oriented for busy restaurant operators.`)

	return b.String()
}
