package intel

import "kopik/internal/app/domains/services/svintel"

// IntelHandler 经营分析 HTTP 处理器
type IntelHandler struct {
	intelService *svintel.IntelService
}

// NewIntelHandler 创建经营分析处理器实例
func NewIntelHandler(intelService *svintel.IntelService) *IntelHandler {
	return &IntelHandler{
		intelService: intelService,
	}
}
