package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

func TestWeatherAnalyzer_RainyTakesPrecedence(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	// 同时满足雨天和高温条件，只命中雨天分支
	weather := []model.WeatherRecord{
		{Condition: model.WeatherConditionRainy, TemperatureHigh: 95, PrecipitationChance: 85},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Len(t, recs, 1)

	assert.Equal(t, model.AlertWeatherOpportunity, alerts[0].Kind)
	assert.Equal(t, "Rainy weather expected: 85% precipitation chance", alerts[0].Message)
	assert.Equal(t, model.PriorityMedium, alerts[0].Priority)
	assert.Equal(t, "Increase hot beverage inventory and comfort food options", recs[0].Description)
	assert.InDelta(t, 200.0, recs[0].EstimatedImpact, 0.001)
}

func TestWeatherAnalyzer_HighPrecipitationWithoutRainyCondition(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	weather := []model.WeatherRecord{
		{Condition: "cloudy", TemperatureHigh: 65, PrecipitationChance: 75},
	}

	alerts, _, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Message, "Rainy weather expected")
}

func TestWeatherAnalyzer_HotWeather(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	weather := []model.WeatherRecord{
		{Condition: "sunny", TemperatureHigh: 92, PrecipitationChance: 5},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Len(t, recs, 1)

	assert.Equal(t, "Hot weather expected: 92°F high temperature", alerts[0].Message)
	assert.Equal(t, "Increase cold beverage and ice cream inventory", recs[0].Description)
	assert.InDelta(t, 300.0, recs[0].EstimatedImpact, 0.001)
}

func TestWeatherAnalyzer_ColdWeather(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	weather := []model.WeatherRecord{
		{Condition: "snow", TemperatureHigh: 28, PrecipitationChance: 30},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Len(t, recs, 1)

	assert.Equal(t, "Cold weather expected: 28°F high temperature", alerts[0].Message)
	assert.InDelta(t, 250.0, recs[0].EstimatedImpact, 0.001)
}

func TestWeatherAnalyzer_MildWeatherNoOutput(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	weather := []model.WeatherRecord{
		{Condition: "sunny", TemperatureHigh: 68, PrecipitationChance: 10},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}

func TestWeatherAnalyzer_OnlyLatestForecastUsed(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	// 第一条为最新预报，后续记录即使命中条件也不产出
	weather := []model.WeatherRecord{
		{Condition: "sunny", TemperatureHigh: 70, PrecipitationChance: 10},
		{Condition: model.WeatherConditionRainy, TemperatureHigh: 60, PrecipitationChance: 90},
	}

	alerts, recs, err := analyzer.Analyze(context.Background(), weather)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}

func TestWeatherAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewWeatherAnalyzer(DefaultRuleset())

	alerts, recs, err := analyzer.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, recs)
}
