package summary

import (
	"fmt"

	"kopik/common/model"
)

// 降级摘要的分级阈值
const (
	significantImpactThreshold = 5000.0 // OPPORTUNITY 档位的总收益门槛
	topRecCitationThreshold    = 1000.0 // 摘要中引用单条建议的收益门槛
	topRecDescriptionLimit     = 50     // 引用建议描述的截断长度
)

// fallbackNarrative 确定性降级摘要
// 四档：URGENT（有高优先级告警）> OPPORTUNITY（收益显著）> MONITORING（有告警）> OPTIMAL
func fallbackNarrative(run *model.AnalysisRun) string {
	highPriority := run.Metrics.HighPriorityAlerts
	totalImpact := run.Metrics.TotalProfitImpact
	alerts := run.Alerts
	recs := run.Recommendations

	if highPriority > 0 {
		// 1. 按前五条告警的类型分布选择语境
		kindCounts := make(map[model.AlertKind]int)
		for i, alert := range alerts {
			if i >= 5 {
				break
			}
			kindCounts[alert.Kind]++
		}

		var context string
		switch {
		case kindCounts[model.AlertLowStock] > 0:
			others := highPriority - kindCounts[model.AlertLowStock]
			if others < 0 {
				others = 0
			}
			context = fmt.Sprintf("Low stock alerts and %d other critical issues require immediate action.", others)
		case kindCounts[model.AlertUpcomingEvent] > 0:
			context = fmt.Sprintf("Major upcoming events and %d other critical issues detected.", maxInt(0, highPriority-1))
		case kindCounts[model.AlertDelayedOrders] > 0 || kindCounts[model.AlertOverdueOrders] > 0:
			context = fmt.Sprintf("Supply chain delays and %d other critical issues need attention.", maxInt(0, highPriority-1))
		default:
			context = fmt.Sprintf("%d critical operational issues detected.", highPriority)
		}

		// 2. 收益最高的建议超阈值时单独引用
		var impactNote string
		if top, ok := topRecommendation(recs); ok && top.EstimatedImpact > topRecCitationThreshold {
			impactNote = fmt.Sprintf("Priority: $%.0f opportunity from %s...",
				top.EstimatedImpact, truncate(top.Description, topRecDescriptionLimit))
		} else {
			impactNote = fmt.Sprintf("Total optimization potential: $%.0f across %d AI recommendations.",
				totalImpact, len(recs))
		}

		return fmt.Sprintf("🚨 URGENT: %s %s", context, impactNote)
	}

	if len(alerts) > 0 {
		if totalImpact > significantImpactThreshold {
			return fmt.Sprintf("📊 OPPORTUNITY: %d areas for improvement identified. Significant $%.0f profit optimization potential available. Focus on high-impact recommendations.",
				len(alerts), totalImpact)
		}
		return fmt.Sprintf("✅ MONITORING: %d minor issues detected. $%.0f in optimization opportunities identified. Operations stable overall.",
			len(alerts), totalImpact)
	}

	return fmt.Sprintf("🎯 OPTIMAL: Operations running smoothly. AI identified $%.0f in additional optimization opportunities for continued growth.", totalImpact)
}

// topRecommendation 收益最高的建议（建议列表已按收益降序）
func topRecommendation(recs []model.Recommendation) (model.Recommendation, bool) {
	if len(recs) == 0 {
		return model.Recommendation{}, false
	}
	return recs[0], true
}

// truncate 按字符数截断描述
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
