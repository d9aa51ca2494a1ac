package svintel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kopik/common/model"
	"kopik/internal/business"
	"kopik/pkg/infra/redis"
	"kopik/pkg/lmstfy"
	"kopik/pkg/logger"
)

// 同步兜底分析的报告缓存有效期
const latestReportTTL = 30 * time.Minute

// TriggerResult 分析触发结果
type TriggerResult struct {
	RequestID string        // 请求 ID（轮询与追踪用）
	Completed bool          // Smart Wait 窗口内是否拿到结果
	Report    *model.Report // Completed 为 true 时的分析报告
}

// IntelService 经营分析服务（API 侧编排）
// 看板读取走缓存，分析触发走队列（队列未启用时降级为同步执行）
type IntelService struct {
	analysisService *business.AnalysisService
	lmstfyClient    *lmstfy.Client // 可为 nil（队列未启用）
	redisClient     *redis.Client
	queueName       string
	logger          logger.Logger
}

// NewIntelService 创建经营分析服务实例
func NewIntelService(
	analysisService *business.AnalysisService,
	lmstfyClient *lmstfy.Client,
	redisClient *redis.Client,
	queueName string,
	log logger.Logger,
) *IntelService {
	return &IntelService{
		analysisService: analysisService,
		lmstfyClient:    lmstfyClient,
		redisClient:     redisClient,
		queueName:       queueName,
		logger:          log,
	}
}

// Dashboard 获取看板报告
// 优先读最近一次分析的缓存，无缓存时同步执行一次分析兜底
func (s *IntelService) Dashboard(ctx context.Context) (*model.Report, error) {
	// 1. 读缓存
	cached, err := s.redisClient.GetLatestReport(ctx)
	if err != nil {
		s.logger.Warnf(ctx, "read latest report cache failed: %v", err)
	}
	if cached != nil {
		var report model.Report
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
		s.logger.Warnf(ctx, "latest report cache corrupted, re-running analysis")
	}

	// 2. 缓存未命中，同步执行一次分析
	report, err := s.analysisService.Run(ctx, business.RunOptions{Persist: false})
	if err != nil {
		return nil, fmt.Errorf("dashboard analysis failed: %w", err)
	}

	s.cacheReport(ctx, report)

	return report, nil
}

// TriggerAnalysis 触发一次分析运行
// waitSeconds > 0 时进入 Smart Wait：订阅结果频道，窗口内拿到结果直接返回
func (s *IntelService) TriggerAnalysis(ctx context.Context, persist bool, waitSeconds int) (*TriggerResult, error) {
	requestID := uuid.New().String()

	// 队列未启用时降级为同步执行
	if s.lmstfyClient == nil {
		report, err := s.analysisService.Run(ctx, business.RunOptions{Persist: persist})
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}
		s.cacheReport(ctx, report)

		return &TriggerResult{
			RequestID: requestID,
			Completed: true,
			Report:    report,
		}, nil
	}

	// 1. 构造标准化消息并发布到队列
	message := model.AnalyzeJob{
		Payload: model.AnalyzePayload{
			Data: model.AnalyzeData{
				RequestID:  requestID,
				ActionType: model.ActionTypeAnalyze,
				ID:         requestID,
				Data: model.AnalyzeBusinessData{
					TriggeredBy: "api",
					Persist:     persist,
				},
			},
		},
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal analyze job failed: %w", err)
	}

	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := s.lmstfyClient.Publish(s.queueName, messageJSON, 0, 0); err != nil {
		return nil, fmt.Errorf("publish analyze job failed: %w", err)
	}

	s.logger.Infof(ctx, "analyze job published: request_id=%s, persist=%v", requestID, persist)

	// 2. Smart Wait：订阅结果频道
	if waitSeconds > 0 {
		timeout := time.Duration(waitSeconds) * time.Second
		payload, err := s.redisClient.WaitForMessage(ctx, redis.ReportChannel(requestID), timeout)
		if err != nil {
			// 超时或订阅失败，转入轮询
			s.logger.Warnf(ctx, "wait for analysis result failed: request_id=%s, error=%v", requestID, err)
			return &TriggerResult{RequestID: requestID}, nil
		}

		var notification redis.ReportNotification
		if err := json.Unmarshal([]byte(payload), &notification); err != nil {
			return nil, fmt.Errorf("unmarshal report notification failed: %w", err)
		}

		if notification.Status != "SUCCESS" {
			return nil, fmt.Errorf("analysis failed: %s", notification.Error)
		}

		var report model.Report
		if err := json.Unmarshal(notification.Report, &report); err != nil {
			return nil, fmt.Errorf("unmarshal report failed: %w", err)
		}

		return &TriggerResult{
			RequestID: requestID,
			Completed: true,
			Report:    &report,
		}, nil
	}

	return &TriggerResult{RequestID: requestID}, nil
}

// cacheReport 缓存最新报告（失败只记日志）
func (s *IntelService) cacheReport(ctx context.Context, report *model.Report) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.redisClient.SetLatestReport(ctx, reportJSON, latestReportTTL); err != nil {
		s.logger.Warnf(ctx, "cache latest report failed: %v", err)
	}
}
