package model

import "time"

// FormattedAlert 面向看板的告警形态（展示层产出）
type FormattedAlert struct {
	ID         int       `json:"id"`
	Type       AlertKind `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   Priority  `json:"priority"`
	Category   Category  `json:"category"`
	Timestamp  time.Time `json:"timestamp"`
	Actionable bool      `json:"actionable"`
}

// FormattedRecommendation 面向看板的建议形态（展示层产出）
// Priority 为派生值：profit_impact > 500 时为 high，否则 medium
type FormattedRecommendation struct {
	ID                      int      `json:"id"`
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	Confidence              float64  `json:"confidence"`
	ProfitImpact            float64  `json:"profit_impact"`
	Priority                Priority `json:"priority"`
	EstimatedImplementation string   `json:"estimated_implementation"`
	Tags                    []string `json:"tags"`
	Category                Category `json:"category"`
}

// Report 看板响应契约（一次分析运行的最终产出）
// 失败时不返回该结构，而是统一错误响应，二者不混用
type Report struct {
	Success         bool                      `json:"success"`
	Timestamp       time.Time                 `json:"timestamp"`
	Summary         SummaryMetrics            `json:"summary"`
	BusinessSummary string                    `json:"business_summary"`
	Alerts          []FormattedAlert          `json:"alerts"`
	Recommendations []FormattedRecommendation `json:"recommendations"`
	Categories      CategoryRollups           `json:"categories"`
	Insights        []string                  `json:"insights"`
	DataOverview    DataOverview              `json:"data_overview"`
	AnalysisCount   int64                     `json:"analysis_count"`
}
