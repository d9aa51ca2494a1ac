package business

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopik/common/model"
	"kopik/internal/summary"
)

// nopLogger 测试用空日志器
type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

// stubSource 固定快照记录源
type stubSource struct {
	snapshot *model.Snapshot
	err      error
}

func (s *stubSource) FetchSnapshot(ctx context.Context, now time.Time) (*model.Snapshot, error) {
	return s.snapshot, s.err
}

// stubSink 记录落库调用的建议汇
type stubSink struct {
	stored [][]model.FormattedRecommendation
	err    error
}

func (s *stubSink) StoreRecommendations(ctx context.Context, recs []model.FormattedRecommendation) error {
	if s.err != nil {
		return s.err
	}
	s.stored = append(s.stored, recs)
	return nil
}

func newTestService(source *stubSource, sink *stubSink) *AnalysisService {
	summarizer := summary.NewService(nil, 0, nopLogger{})
	return NewAnalysisService(source, sink, summarizer, DefaultRuleset(), nopLogger{})
}

func TestAnalysisService_RunProducesReport(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	sink := &stubSink{}
	svc := newTestService(source, sink)

	report, err := svc.Run(context.Background(), RunOptions{Persist: true})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.True(t, report.Success)
	assert.NotEmpty(t, report.Alerts)
	assert.NotEmpty(t, report.Recommendations)
	assert.NotEmpty(t, report.BusinessSummary)
	assert.NotEmpty(t, report.Insights)
	assert.Equal(t, int64(1), report.AnalysisCount)

	// Persist 开启时建议写入建议汇
	require.Len(t, sink.stored, 1)
	assert.Len(t, sink.stored[0], len(report.Recommendations))
}

func TestAnalysisService_RunCountIncrements(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	svc := newTestService(source, &stubSink{})

	for i := 1; i <= 3; i++ {
		report, err := svc.Run(context.Background(), RunOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(i), report.AnalysisCount)
	}
	assert.Equal(t, int64(3), svc.RunCount())
}

func TestAnalysisService_PersistDisabledSkipsSink(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	sink := &stubSink{}
	svc := newTestService(source, sink)

	_, err := svc.Run(context.Background(), RunOptions{Persist: false})
	require.NoError(t, err)
	assert.Empty(t, sink.stored)
}

func TestAnalysisService_SinkFailureNotFatal(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	sink := &stubSink{err: errors.New("db down")}
	svc := newTestService(source, sink)

	report, err := svc.Run(context.Background(), RunOptions{Persist: true})
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestAnalysisService_SourceFailureFailsRun(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	svc := newTestService(source, &stubSink{})

	report, err := svc.Run(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, int64(0), svc.RunCount())
	assert.Nil(t, svc.LatestReport())
}

func TestAnalysisService_LatestReportCached(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	svc := newTestService(source, &stubSink{})

	assert.Nil(t, svc.LatestReport())

	report, err := svc.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Same(t, report, svc.LatestReport())
}

func TestAnalysisService_NilSinkAllowed(t *testing.T) {
	now := time.Now()
	source := &stubSource{snapshot: buildTestSnapshot(now)}
	summarizer := summary.NewService(nil, 0, nopLogger{})
	svc := NewAnalysisService(source, nil, summarizer, DefaultRuleset(), nopLogger{})

	report, err := svc.Run(context.Background(), RunOptions{Persist: true})
	require.NoError(t, err)
	assert.NotNil(t, report)
}
