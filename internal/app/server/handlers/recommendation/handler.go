package recommendation

import (
	"kopik/pkg/infra/mysql"
	"kopik/pkg/logger"
)

// RecommendationHandler 建议 HTTP 处理器
type RecommendationHandler struct {
	intelDAO *mysql.IntelDAO
	logger   logger.Logger
}

// NewRecommendationHandler 创建建议处理器实例
func NewRecommendationHandler(intelDAO *mysql.IntelDAO, log logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		intelDAO: intelDAO,
		logger:   log,
	}
}
