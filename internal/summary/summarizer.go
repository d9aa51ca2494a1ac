package summary

import (
	"context"
	"strings"
	"time"

	"kopik/common/model"
	"kopik/pkg/logger"
)

// Backend 生成式摘要后端
// 不可用或失败时由 Service 降级到模板摘要，错误不会向上传播
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service 经营摘要服务
// Summarize 永不返回错误：后端失败、超时、未配置时走确定性降级模板
type Service struct {
	backend Backend
	timeout time.Duration
	logger  logger.Logger
}

// NewService 创建摘要服务实例
// backend 可为 nil，此时所有摘要走降级模板
func NewService(backend Backend, timeout time.Duration, log logger.Logger) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Service{
		backend: backend,
		timeout: timeout,
		logger:  log,
	}
}

// Summarize 生成经营摘要
// 优先走生成式后端（带超时），失败时降级为分级模板摘要
func (s *Service) Summarize(ctx context.Context, run *model.AnalysisRun) string {
	if s.backend == nil {
		return fallbackNarrative(run)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	narrative, err := s.backend.Generate(timeoutCtx, buildPrompt(run))
	if err != nil {
		if s.logger != nil {
			s.logger.Warnf(ctx, "summary backend failed, using fallback: %v", err)
		}
		return fallbackNarrative(run)
	}

	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		return fallbackNarrative(run)
	}

	return narrative
}
