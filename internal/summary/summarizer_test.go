package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
)

// stubBackend 可编程的摘要后端
type stubBackend struct {
	output string
	err    error
	prompt string
}

func (s *stubBackend) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.output, s.err
}

func testRun(t *testing.T) *model.AnalysisRun {
	t.Helper()
	return &model.AnalysisRun{
		Alerts: []model.Alert{
			mustAlert(t, model.AlertLowStock, model.PriorityHigh),
		},
		Recommendations: []model.Recommendation{
			mustRec(t, "Reorder Coffee Beans immediately or source from alternative supplier", 140),
		},
		Metrics: model.SummaryMetrics{
			TotalAlerts:          1,
			HighPriorityAlerts:   1,
			TotalRecommendations: 1,
			TotalProfitImpact:    140,
		},
		Overview: model.DataOverview{LowStockItems: 1},
	}
}

func TestService_NilBackendUsesFallback(t *testing.T) {
	svc := NewService(nil, 0, nil)

	narrative := svc.Summarize(context.Background(), testRun(t))
	assert.True(t, strings.HasPrefix(narrative, "🚨 URGENT:"), narrative)
}

func TestService_BackendErrorFallsBack(t *testing.T) {
	backend := &stubBackend{err: errors.New("quota exceeded")}
	svc := NewService(backend, 0, nil)

	narrative := svc.Summarize(context.Background(), testRun(t))
	assert.NotEmpty(t, narrative)
	assert.True(t, strings.HasPrefix(narrative, "🚨 URGENT:"), narrative)
}

func TestService_EmptyBackendOutputFallsBack(t *testing.T) {
	backend := &stubBackend{output: "   \n"}
	svc := NewService(backend, 0, nil)

	narrative := svc.Summarize(context.Background(), testRun(t))
	assert.True(t, strings.HasPrefix(narrative, "🚨 URGENT:"), narrative)
}

func TestService_BackendOutputTrimmed(t *testing.T) {
	backend := &stubBackend{output: "\n  Inventory is running low, reorder now.  \n"}
	svc := NewService(backend, 0, nil)

	narrative := svc.Summarize(context.Background(), testRun(t))
	assert.Equal(t, "Inventory is running low, reorder now.", narrative)
}

func TestService_PromptEmbedsRunData(t *testing.T) {
	backend := &stubBackend{output: "ok"}
	svc := NewService(backend, 0, nil)

	run := testRun(t)
	svc.Summarize(context.Background(), run)

	require.NotEmpty(t, backend.prompt)
	assert.Contains(t, backend.prompt, "1 alerts detected (1 high priority)")
	assert.Contains(t, backend.prompt, "Potential profit impact: $140")
	assert.Contains(t, backend.prompt, "1 low stock items")
	assert.Contains(t, backend.prompt, "(Priority: high)")
	assert.Contains(t, backend.prompt, "($140 impact, 80% confidence)")
}

func TestBuildPrompt_LimitsToTopThree(t *testing.T) {
	run := &model.AnalysisRun{}
	for i := 0; i < 5; i++ {
		run.Alerts = append(run.Alerts, mustAlert(t, model.AlertLowStock, model.PriorityHigh))
		run.Recommendations = append(run.Recommendations, mustRec(t, "Reorder item", 100))
	}

	prompt := buildPrompt(run)
	assert.Equal(t, 3, strings.Count(prompt, "(Priority: high)"))
	assert.Equal(t, 3, strings.Count(prompt, "impact, 80% confidence)"))
}
