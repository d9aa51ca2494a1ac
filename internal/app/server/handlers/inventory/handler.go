package inventory

import (
	"kopik/pkg/infra/mysql"
	"kopik/pkg/logger"
)

// InventoryHandler 库存商品 HTTP 处理器
type InventoryHandler struct {
	intelDAO *mysql.IntelDAO
	logger   logger.Logger
}

// NewInventoryHandler 创建库存处理器实例
func NewInventoryHandler(intelDAO *mysql.IntelDAO, log logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		intelDAO: intelDAO,
		logger:   log,
	}
}
