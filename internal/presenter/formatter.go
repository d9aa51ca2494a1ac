package presenter

import (
	"math"
	"strings"

	"kopik/common/model"
)

// 告警类型 → 展示标题映射，未知类型用通用标题兜底
var alertTitles = map[model.AlertKind]string{
	model.AlertLowStock:           "Low Inventory Alert",
	model.AlertHighWaste:          "Food Waste Warning",
	model.AlertWeatherOpportunity: "Weather-Based Opportunity",
	model.AlertUpcomingEvent:      "Event Planning Alert",
	model.AlertDelayedOrders:      "Supply Chain Issue",
	model.AlertOverdueOrders:      "Urgent Order Follow-up",
	model.AlertHighPerformer:      "Top Product Performance",
	model.AlertUnderperformer:     "Product Performance Issue",
}

const defaultAlertTitle = "Business Alert"

// 建议的影响等级标签与派生优先级阈值
const (
	highImpactTagThreshold   = 1000.0
	mediumImpactTagThreshold = 100.0
	highPriorityImpactLimit  = 500.0
)

// FormatReport 将分析运行结果塑形为看板响应
// 仅做展示层映射（标题、标签、实施周期、派生优先级），不改变既有排序
func FormatReport(run *model.AnalysisRun) *model.Report {
	alerts := make([]model.FormattedAlert, 0, len(run.Alerts))
	for i, alert := range run.Alerts {
		alerts = append(alerts, model.FormattedAlert{
			ID:         i + 1,
			Type:       alert.Kind,
			Title:      alertTitle(alert.Kind),
			Message:    alert.Message,
			Priority:   alert.Priority,
			Category:   alert.Category,
			Timestamp:  run.GeneratedAt,
			Actionable: true,
		})
	}

	recs := make([]model.FormattedRecommendation, 0, len(run.Recommendations))
	for i, rec := range run.Recommendations {
		recs = append(recs, model.FormattedRecommendation{
			ID:                      i + 1,
			Title:                   recommendationTitle(rec.Description),
			Description:             rec.Description,
			Confidence:              roundTo1Decimal(rec.Confidence),
			ProfitImpact:            roundTo2Decimals(rec.EstimatedImpact),
			Priority:                derivedPriority(rec.EstimatedImpact),
			EstimatedImplementation: implementationTime(rec.Description, rec.Confidence),
			Tags:                    recommendationTags(rec.Description, rec.EstimatedImpact),
			Category:                rec.Category,
		})
	}

	return &model.Report{
		Success:   true,
		Timestamp: run.GeneratedAt,
		Summary: model.SummaryMetrics{
			TotalAlerts:          run.Metrics.TotalAlerts,
			HighPriorityAlerts:   run.Metrics.HighPriorityAlerts,
			TotalRecommendations: run.Metrics.TotalRecommendations,
			TotalProfitImpact:    roundTo2Decimals(run.Metrics.TotalProfitImpact),
		},
		BusinessSummary: run.Narrative,
		Alerts:          alerts,
		Recommendations: recs,
		Categories:      run.Categories,
		Insights:        buildInsights(run),
		DataOverview:    run.Overview,
	}
}

// alertTitle 告警展示标题
func alertTitle(kind model.AlertKind) string {
	if title, ok := alertTitles[kind]; ok {
		return title
	}
	return defaultAlertTitle
}

// recommendationTitle 根据描述关键词生成建议标题
func recommendationTitle(description string) string {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "reorder"):
		return "Inventory Reorder"
	case strings.Contains(desc, "increase") && strings.Contains(desc, "inventory"):
		return "Scale Inventory"
	case strings.Contains(desc, "waste"):
		return "Waste Reduction"
	case strings.Contains(desc, "weather"):
		return "Weather Adaptation"
	case strings.Contains(desc, "event"):
		return "Event Preparation"
	case strings.Contains(desc, "supplier"):
		return "Supplier Management"
	default:
		return "Business Optimization"
	}
}

// implementationTime 实施周期估算（关键词 + 置信度启发式）
func implementationTime(description string, confidence float64) string {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "immediate") || confidence > 90:
		return "immediate"
	case strings.Contains(desc, "reorder") || strings.Contains(desc, "contact"):
		return "1-2 days"
	case strings.Contains(desc, "increase") || strings.Contains(desc, "prepare"):
		return "3-5 days"
	default:
		return "1 week"
	}
}

// recommendationTags 根据描述关键词和收益等级生成标签
func recommendationTags(description string, impact float64) []string {
	desc := strings.ToLower(description)
	tags := make([]string, 0, 4)

	if strings.Contains(desc, "inventory") {
		tags = append(tags, "inventory")
	}
	if strings.Contains(desc, "supplier") {
		tags = append(tags, "supply-chain")
	}
	if strings.Contains(desc, "weather") {
		tags = append(tags, "weather")
	}
	if strings.Contains(desc, "event") {
		tags = append(tags, "events")
	}
	if strings.Contains(desc, "waste") {
		tags = append(tags, "sustainability")
	}
	if strings.Contains(desc, "immediate") {
		tags = append(tags, "urgent")
	}

	if impact > highImpactTagThreshold {
		tags = append(tags, "high-impact")
	} else if impact > mediumImpactTagThreshold {
		tags = append(tags, "medium-impact")
	}

	return tags
}

// derivedPriority 建议的派生优先级（只有 high/medium 两档）
func derivedPriority(impact float64) model.Priority {
	if impact > highPriorityImpactLimit {
		return model.PriorityHigh
	}
	return model.PriorityMedium
}

func roundTo1Decimal(f float64) float64 {
	return math.Round(f*10) / 10
}

func roundTo2Decimals(f float64) float64 {
	return math.Round(f*100) / 100
}
