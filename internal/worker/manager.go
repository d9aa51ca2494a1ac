package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"kopik/internal/business"
	"kopik/internal/domains"
	"kopik/internal/framework"
	"kopik/internal/summary"
	"kopik/pkg/config"
	"kopik/pkg/infra/mysql"
	"kopik/pkg/infra/redis"
	"kopik/pkg/lmstfy"
	"kopik/pkg/logger"
)

// Manager 接口
type Manager interface {
	Start() error
	Shutdown()
}

// ManagerInstance Manager 实例
type ManagerInstance struct {
	ctx             context.Context
	cfg             *config.Config
	lmstfyClient    *lmstfy.Client
	intelDAO        *mysql.IntelDAO
	redisClient     *redis.Client
	analysisService *business.AnalysisService
	workers         []Worker
	closing         *atomic.Bool
	shutdownCh      chan struct{}
	wg              sync.WaitGroup
	logger          logger.Logger
}

// NewManagerInstance 创建 Manager
// 初始化全部外部依赖：lmstfy、MySQL、Redis、Gemini（可选）
func NewManagerInstance(cfg *config.Config, log logger.Logger) (Manager, error) {
	ctx := context.Background()

	// 1. 初始化 lmstfy 客户端
	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create lmstfy client: %w", err)
	}

	// 2. 初始化数据访问层
	intelDAO, err := mysql.NewIntelDAO(cfg.MySQL.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create intel dao: %w", err)
	}

	// 3. 初始化 Redis（结果通知 + 报告缓存）
	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	// 4. 初始化摘要后端（api_key 未配置时仅使用降级模板）
	var summaryBackend summary.Backend
	if cfg.Gemini.APIKey != "" {
		geminiBackend, err := summary.NewGeminiBackend(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini backend: %w", err)
		}
		summaryBackend = geminiBackend
		log.Infof(ctx, "[Manager] Gemini backend initialized, model: %s", cfg.Gemini.Model)
	} else {
		log.Warnf(ctx, "[Manager] Gemini api_key not configured, using fallback summaries")
	}

	summarizer := summary.NewService(summaryBackend, cfg.Gemini.Timeout, log)

	// 5. 组装分析服务
	analysisService := business.NewAnalysisService(intelDAO, intelDAO, summarizer, business.DefaultRuleset(), log)

	log.Infof(ctx, "[Manager] Initialized, queue: %s", cfg.Lmstfy.Queue)

	return &ManagerInstance{
		ctx:             ctx,
		cfg:             cfg,
		lmstfyClient:    lmstfyClient,
		intelDAO:        intelDAO,
		redisClient:     redisClient,
		analysisService: analysisService,
		closing:         atomic.NewBool(false),
		shutdownCh:      make(chan struct{}),
		workers:         make([]Worker, 0),
		logger:          log,
	}, nil
}

// Start 启动 Manager
func (m *ManagerInstance) Start() error {
	m.logger.Infof(m.ctx, "[Manager] Starting...")

	// 1. 加载所有 Worker
	if err := m.loadWorkers(); err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	m.logger.Infof(m.ctx, "[Manager] All workers loaded, count: %d", len(m.workers))

	// 2. 启动所有 Worker（每个 Worker 在独立 goroutine）
	for _, worker := range m.workers {
		w := worker
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			w.Start()
		}()
		m.logger.Infof(m.ctx, "[Manager] Worker started: %s", w.GetName())
	}

	m.logger.Infof(m.ctx, "[Manager] Start success")

	// 3. 阻塞等待退出信号
	<-m.shutdownCh

	return nil
}

// Shutdown 优雅退出
func (m *ManagerInstance) Shutdown() {
	m.logger.Infof(m.ctx, "[Manager] Began to close")

	// 原子操作，保证并发安全
	if m.closing.CAS(false, true) {
		// 1. 所有 Worker 安全退出
		for _, worker := range m.workers {
			m.logger.Infof(m.ctx, "[Manager] Shutting down worker: %s", worker.GetName())
			worker.Shutdown()
		}

		// 2. 等待所有 Worker 退出
		m.wg.Wait()

		// 3. 释放外部依赖
		_ = m.redisClient.Close()
		_ = m.intelDAO.Close()

		// 4. 关闭信号通道
		close(m.shutdownCh)

		m.logger.Infof(m.ctx, "[Manager] Shutdown complete")
	}
}

// loadWorkers 加载所有 Worker
func (m *ManagerInstance) loadWorkers() error {
	// 获取 GetProcess 函数
	getProcess := domains.GetProcess(m.logger, m.analysisService, m.redisClient)

	// 遍历配置中的所有 Worker
	for _, workerCfg := range m.cfg.Workers {
		// 创建 Subscriber 配置
		subCfg := &framework.SubscriberConfig{
			QueueName:    workerCfg.QueueName,
			Concurrency:  workerCfg.Subscriber.Threads,
			Rate:         workerCfg.Subscriber.Rate,
			Timeout:      workerCfg.Subscriber.Timeout,
			TTR:          workerCfg.Subscriber.TTR,
			ErrorBackoff: workerCfg.Subscriber.ErrorBackoff,
		}

		// 创建 Processor 配置
		procCfg := &framework.ProcessorConfig{
			Concurrency: workerCfg.Processor.Threads,
			BufferSize:  workerCfg.Processor.BufferSize,
			Timeout:     workerCfg.Processor.Timeout,
		}

		// 创建 Worker 实例
		worker, err := NewWorkerInstance(
			m.ctx,
			workerCfg.Name,
			subCfg,
			procCfg,
			m.lmstfyClient, // MessageSource
			getProcess,     // lmstfyx.Proc
			m.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", workerCfg.Name, err)
		}

		m.workers = append(m.workers, worker)
	}

	return nil
}
