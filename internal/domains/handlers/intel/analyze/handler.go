package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kopik/common/model"
	"kopik/internal/business"
	"kopik/internal/domains/common"
	"kopik/internal/domains/common/job"
	"kopik/internal/domains/common/response"
	"kopik/pkg/errorutil"
	"kopik/pkg/infra/redis"
)

// 最新报告缓存有效期
const latestReportTTL = 30 * time.Minute

// AnalyzeHandler 分析任务 Handler
// 执行一次完整分析运行，并将结果通过 Redis 通知触发方（Smart Wait）
type AnalyzeHandler struct {
	ctx     context.Context
	meta    *job.Meta
	bizData *model.AnalyzeBusinessData
}

// NewAnalyzeHandler 创建分析 Handler
// 解析标准化 Job 消息
func NewAnalyzeHandler(ctx context.Context, meta *job.Meta, payload interface{}) (common.HandlerServ, error) {
	// 解析 payload（业务数据）
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData model.AnalyzeBusinessData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	if bizData.TriggeredBy == "" {
		bizData.TriggeredBy = "api"
	}

	return &AnalyzeHandler{
		ctx:     ctx,
		meta:    meta,
		bizData: &bizData,
	}, nil
}

// GetProcess 处理分析请求
func (h *AnalyzeHandler) GetProcess() *response.Response {
	// 创建结果
	result := response.NewAnalysisResult()

	// 处理业务逻辑
	err := h.process(result)

	// 包装响应
	resp := &response.Response{}
	resp.WrapResponse(result, h.meta, err)

	return resp
}

// process 业务处理逻辑
func (h *AnalyzeHandler) process(result *response.AnalysisResult) error {
	// 1. 从 Context 获取 AnalysisService
	analysisService, ok := h.ctx.Value("analysis_service").(*business.AnalysisService)
	if !ok || analysisService == nil {
		return errorutil.NonRetriable("AnalysisService not found in context")
	}

	// 2. 执行分析（数据源故障可重试，等待重新投递）
	report, err := analysisService.Run(h.ctx, business.RunOptions{
		Persist: h.bizData.Persist,
	})
	if err != nil {
		h.publishFailure(err)
		return errorutil.Retriable(fmt.Sprintf("analysis run failed: %v", err))
	}

	result.Report = report

	// 3. 推送结果通知（Smart Wait 的服务端）并缓存最新报告
	h.publishSuccess(report)

	return nil
}

// publishSuccess 推送成功通知并缓存最新报告
// 通知失败不影响任务结果（触发方会走轮询兜底）
func (h *AnalyzeHandler) publishSuccess(report *model.Report) {
	publisher, ok := h.ctx.Value("report_publisher").(*redis.Client)
	if !ok || publisher == nil {
		return
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return
	}

	notification := &redis.ReportNotification{
		RequestID: h.meta.RequestID,
		Status:    "SUCCESS",
		Report:    reportJSON,
		Timestamp: time.Now().Unix(),
	}
	_ = publisher.PublishReport(h.ctx, redis.ReportChannel(h.meta.RequestID), notification)

	_ = publisher.SetLatestReport(h.ctx, reportJSON, latestReportTTL)
}

// publishFailure 推送失败通知
func (h *AnalyzeHandler) publishFailure(runErr error) {
	publisher, ok := h.ctx.Value("report_publisher").(*redis.Client)
	if !ok || publisher == nil {
		return
	}

	notification := &redis.ReportNotification{
		RequestID: h.meta.RequestID,
		Status:    "FAILED",
		Error:     runErr.Error(),
		Timestamp: time.Now().Unix(),
	}
	_ = publisher.PublishReport(h.ctx, redis.ReportChannel(h.meta.RequestID), notification)
}
