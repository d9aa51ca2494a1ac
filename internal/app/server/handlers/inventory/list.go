package inventory

import (
	"github.com/gin-gonic/gin"

	"kopik/internal/app/pkg/ginx"
)

// List 库存商品列表接口
// GET /api/v1/inventory-items
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.intelDAO.ListInventoryItems(c.Request.Context())
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "list inventory items failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, items)
}

// LowStock 低库存商品列表接口
// GET /api/v1/inventory-items/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.intelDAO.ListLowStockItems(c.Request.Context())
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "list low stock items failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, items)
}
