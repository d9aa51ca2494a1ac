package business

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"

	"kopik/common/model"
	"kopik/internal/presenter"
	"kopik/internal/summary"
	"kopik/pkg/logger"
)

// RecordSource 分析输入记录源（六个域的时间窗口快照）
type RecordSource interface {
	FetchSnapshot(ctx context.Context, now time.Time) (*model.Snapshot, error)
}

// RecommendationSink 建议落库接口
// 落库失败只记日志不影响本次运行结果
type RecommendationSink interface {
	StoreRecommendations(ctx context.Context, recs []model.FormattedRecommendation) error
}

// RunOptions 单次分析运行选项
type RunOptions struct {
	// Persist 为 true 时将本次建议写入建议汇
	Persist bool
}

// AnalysisService 分析服务（编排器）
// 串起记录源 → 聚合分析 → 摘要 → 展示层塑形 → 建议落库的完整流程
// 跨运行共享状态仅有运行计数器和最近一次报告
type AnalysisService struct {
	composite  *CompositeAnalyzer
	source     RecordSource
	sink       RecommendationSink
	summarizer *summary.Service
	logger     logger.Logger

	runCount atomic.Int64

	mu         sync.RWMutex
	lastReport *model.Report
}

// NewAnalysisService 创建分析服务实例
// sink 可为 nil（不落库场景）
func NewAnalysisService(
	source RecordSource,
	sink RecommendationSink,
	summarizer *summary.Service,
	rules *Ruleset,
	log logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		composite:  NewCompositeAnalyzer(rules),
		source:     source,
		sink:       sink,
		summarizer: summarizer,
		logger:     log,
	}
}

// Run 执行一次完整分析
// 分析失败时整次运行失败，不产出任何部分结果；摘要失败自动降级不影响运行
func (s *AnalysisService) Run(ctx context.Context, opts RunOptions) (*model.Report, error) {
	now := time.Now()

	// 1. 拉取输入快照
	snapshot, err := s.source.FetchSnapshot(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot failed: %w", err)
	}

	s.logger.Infof(ctx, "data summary: %d low stock, %d waste records, %d weather records, %d events, %d sales, %d orders",
		len(snapshot.Inventory), len(snapshot.Waste), len(snapshot.Weather),
		len(snapshot.Events), len(snapshot.Sales), len(snapshot.Orders))

	// 2. 聚合分析
	run, err := s.composite.Run(ctx, now, snapshot)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	// 3. 生成经营摘要（永不失败，后端异常自动降级）
	run.Narrative = s.summarizer.Summarize(ctx, run)

	// 4. 展示层塑形
	report := presenter.FormatReport(run)
	report.AnalysisCount = s.runCount.Inc()

	s.logger.Infof(ctx, "analysis #%d done: %d alerts (%d high), %d recommendations, $%.2f total impact",
		report.AnalysisCount, run.Metrics.TotalAlerts, run.Metrics.HighPriorityAlerts,
		run.Metrics.TotalRecommendations, run.Metrics.TotalProfitImpact)

	// 5. 建议落库（失败不影响本次结果）
	if opts.Persist && s.sink != nil && len(report.Recommendations) > 0 {
		if err := s.sink.StoreRecommendations(ctx, report.Recommendations); err != nil {
			s.logger.Errorf(ctx, "store recommendations failed: %v", err)
		} else {
			s.logger.Infof(ctx, "stored %d recommendations", len(report.Recommendations))
		}
	}

	// 6. 缓存最近一次报告
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	return report, nil
}

// LatestReport 最近一次运行的报告（尚未运行过返回 nil）
func (s *AnalysisService) LatestReport() *model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

// RunCount 已完成的运行次数
func (s *AnalysisService) RunCount() int64 {
	return s.runCount.Load()
}

// RunContinuous 按固定间隔持续运行，直到 ctx 取消
func (s *AnalysisService) RunContinuous(ctx context.Context, interval time.Duration, opts RunOptions) {
	s.logger.Infof(ctx, "starting continuous analysis, interval: %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Run(ctx, opts); err != nil {
			s.logger.Errorf(ctx, "scheduled analysis failed: %v", err)
		}

		select {
		case <-ctx.Done():
			s.logger.Infof(ctx, "continuous analysis stopped after %d runs", s.runCount.Load())
			return
		case <-ticker.C:
		}
	}
}
