package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"kopik/internal/app/domains/services/svintel"
	"kopik/internal/app/server/handlers/intel"
	"kopik/internal/app/server/handlers/inventory"
	"kopik/internal/app/server/handlers/recommendation"
	"kopik/internal/app/server/routers"
	"kopik/internal/business"
	"kopik/internal/summary"
	"kopik/pkg/config"
	"kopik/pkg/infra/mysql"
	"kopik/pkg/infra/redis"
	"kopik/pkg/lmstfy"
	"kopik/pkg/logger"
)

// App 应用实例
type App struct {
	Engine          *gin.Engine
	AnalysisService *business.AnalysisService
	IntelService    *svintel.IntelService
}

// InitializeApp 组装应用依赖（手动依赖注入）
// 返回清理函数用于释放外部连接
func InitializeApp(cfg *config.Config, log logger.Logger) (*App, func(), error) {
	ctx := context.Background()

	// 1. 数据访问层
	intelDAO, err := mysql.NewIntelDAO(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create intel dao: %w", err)
	}

	// 2. Redis（Smart Wait 订阅 + 报告缓存）
	redisClient, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = intelDAO.Close()
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	// 3. 消息队列（可选，未配置时分析同步执行）
	var lmstfyClient *lmstfy.Client
	if cfg.Lmstfy.Enabled() {
		lmstfyClient, err = lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
		if err != nil {
			_ = redisClient.Close()
			_ = intelDAO.Close()
			return nil, nil, fmt.Errorf("failed to create lmstfy client: %w", err)
		}
		log.Infof(ctx, "lmstfy enabled, queue: %s", cfg.Lmstfy.Queue)
	} else {
		log.Warnf(ctx, "lmstfy not configured, analysis runs synchronously")
	}

	// 4. 摘要服务（api_key 未配置时仅使用降级模板）
	var summaryBackend summary.Backend
	if cfg.Gemini.APIKey != "" {
		geminiBackend, err := summary.NewGeminiBackend(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			_ = redisClient.Close()
			_ = intelDAO.Close()
			return nil, nil, fmt.Errorf("failed to create gemini backend: %w", err)
		}
		summaryBackend = geminiBackend
	} else {
		log.Warnf(ctx, "gemini api_key not configured, using fallback summaries")
	}

	summarizer := summary.NewService(summaryBackend, cfg.Gemini.Timeout, log)

	// 5. 分析服务
	analysisService := business.NewAnalysisService(intelDAO, intelDAO, summarizer, business.DefaultRuleset(), log)

	// 6. API 编排服务与 HTTP 处理器
	intelService := svintel.NewIntelService(analysisService, lmstfyClient, redisClient, cfg.Lmstfy.Queue, log)

	intelHandler := intel.NewIntelHandler(intelService)
	inventoryHandler := inventory.NewInventoryHandler(intelDAO, log)
	recommendationHandler := recommendation.NewRecommendationHandler(intelDAO, log)

	engine := routers.SetupRoutes(intelHandler, inventoryHandler, recommendationHandler, log)

	cleanup := func() {
		_ = redisClient.Close()
		_ = intelDAO.Close()
	}

	return &App{
		Engine:          engine,
		AnalysisService: analysisService,
		IntelService:    intelService,
	}, cleanup, nil
}
