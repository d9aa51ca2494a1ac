package business

import (
	"context"
	"fmt"

	"kopik/common/model"
)

// WeatherAnalyzer 天气分析器
// 只看最新一条预报，三个分支互斥：雨天 > 高温 > 低温，首个命中即止
type WeatherAnalyzer struct {
	rules *Ruleset
}

// NewWeatherAnalyzer 创建天气分析器实例
func NewWeatherAnalyzer(rules *Ruleset) *WeatherAnalyzer {
	return &WeatherAnalyzer{rules: rules}
}

// Analyze 执行天气分析
// weather 按日期倒序排列，第一条为最新预报
func (a *WeatherAnalyzer) Analyze(ctx context.Context, weather []model.WeatherRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0, 1)
	recs := make([]model.Recommendation, 0, 1)

	if len(weather) == 0 {
		return alerts, recs, nil
	}

	current := weather[0]

	var (
		message     string
		description string
		confidence  float64
		impact      float64
	)

	switch {
	case current.Condition == model.WeatherConditionRainy || current.PrecipitationChance > a.rules.RainChanceThreshold:
		message = fmt.Sprintf("Rainy weather expected: %.0f%% precipitation chance", current.PrecipitationChance)
		description = "Increase hot beverage inventory and comfort food options"
		confidence = 75.0
		impact = a.rules.RainImpact
	case current.TemperatureHigh > a.rules.HotTempThreshold:
		message = fmt.Sprintf("Hot weather expected: %.0f°F high temperature", current.TemperatureHigh)
		description = "Increase cold beverage and ice cream inventory"
		confidence = 80.0
		impact = a.rules.HotImpact
	case current.TemperatureHigh < a.rules.ColdTempThreshold:
		message = fmt.Sprintf("Cold weather expected: %.0f°F high temperature", current.TemperatureHigh)
		description = "Increase hot food and warm beverage inventory"
		confidence = 75.0
		impact = a.rules.ColdImpact
	default:
		// 温和天气不产出任何告警
		return alerts, recs, nil
	}

	alert, err := model.NewAlert(model.AlertWeatherOpportunity, message, model.PriorityMedium, model.CategoryWeather)
	if err != nil {
		return nil, nil, fmt.Errorf("build weather alert failed: %w", err)
	}
	alerts = append(alerts, alert)

	rec, err := model.NewRecommendation(description, confidence, impact, model.CategoryWeather)
	if err != nil {
		return nil, nil, fmt.Errorf("build weather recommendation failed: %w", err)
	}
	recs = append(recs, rec)

	return alerts, recs, nil
}
