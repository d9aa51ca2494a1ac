package inventory

import (
	"github.com/gin-gonic/gin"

	"kopik/internal/app/domains/apimodel/request"
	"kopik/internal/app/pkg/ginx"
)

// Create 创建库存商品接口
// POST /api/v1/inventory-items
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	item, err := req.ToEntity()
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	if err := h.intelDAO.CreateInventoryItem(c.Request.Context(), item); err != nil {
		h.logger.Errorf(c.Request.Context(), "create inventory item failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, item)
}
