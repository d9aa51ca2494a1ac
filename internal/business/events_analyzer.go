package business

import (
	"context"
	"fmt"
	"math"
	"time"

	"kopik/common/model"
)

// EventsAnalyzer 活动分析器
// 关注一周内、预期人数超阈值的活动，按活动类型附加专项备货建议
type EventsAnalyzer struct {
	rules *Ruleset
}

// NewEventsAnalyzer 创建活动分析器实例
func NewEventsAnalyzer(rules *Ruleset) *EventsAnalyzer {
	return &EventsAnalyzer{rules: rules}
}

// Analyze 执行活动分析
func (a *EventsAnalyzer) Analyze(ctx context.Context, now time.Time, events []model.EventRecord) ([]model.Alert, []model.Recommendation, error) {
	alerts := make([]model.Alert, 0)
	recs := make([]model.Recommendation, 0)

	for _, event := range events {
		daysUntil := daysBetween(now, event.StartDate)

		if event.ExpectedAttendance <= a.rules.EventAttendanceThreshold || daysUntil > a.rules.EventHorizonDays {
			continue
		}

		// 1. 临近活动升级为高优先级
		priority := model.PriorityMedium
		if daysUntil <= a.rules.EventUrgentDays {
			priority = model.PriorityHigh
		}

		alert, err := model.NewAlert(
			model.AlertUpcomingEvent,
			fmt.Sprintf("Major event in %d days: %s (%d expected)", daysUntil, event.Name, event.ExpectedAttendance),
			priority,
			model.CategoryDemand,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build event alert failed: %w", err)
		}
		alerts = append(alerts, alert)

		// 2. 主建议：备货增幅按人数的 10% 估算并封顶
		multiplier := event.ImpactMultiplier
		if multiplier == 0 {
			multiplier = 1.0
		}
		increase := math.Min(float64(event.ExpectedAttendance)*0.1, a.rules.MaxInventoryIncrease)
		profitEstimate := float64(event.ExpectedAttendance) * a.rules.PerPersonProfit * multiplier

		rec, err := model.NewRecommendation(
			fmt.Sprintf("Increase inventory by %.0f%% for %s", increase, event.Name),
			85.0,
			profitEstimate,
			model.CategoryDemand,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("build event recommendation failed: %w", err)
		}
		recs = append(recs, rec)

		// 3. 按活动类型附加专项建议
		switch event.EventType {
		case model.EventTypeSports:
			extra, err := model.NewRecommendation(
				"Stock up on quick snacks, beverages, and finger foods",
				90.0,
				profitEstimate*a.rules.SportsImpactShare,
				model.CategoryDemand,
			)
			if err != nil {
				return nil, nil, fmt.Errorf("build sports recommendation failed: %w", err)
			}
			recs = append(recs, extra)
		case model.EventTypeFestival:
			extra, err := model.NewRecommendation(
				"Prepare special menu items and increase beverage stock",
				85.0,
				profitEstimate*a.rules.FestivalImpactShare,
				model.CategoryDemand,
			)
			if err != nil {
				return nil, nil, fmt.Errorf("build festival recommendation failed: %w", err)
			}
			recs = append(recs, extra)
		}
	}

	return alerts, recs, nil
}

// daysBetween 自然日差值（按日期截断，忽略时分秒）
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
