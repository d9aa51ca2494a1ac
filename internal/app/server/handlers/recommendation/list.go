package recommendation

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kopik/internal/app/pkg/ginx"
)

// List 历史建议列表接口
// GET /api/v1/recommendations?limit=20
func (h *RecommendationHandler) List(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	recs, err := h.intelDAO.ListRecommendations(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "list recommendations failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, recs)
}
