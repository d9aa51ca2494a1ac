package intel

import (
	"github.com/gin-gonic/gin"

	"kopik/internal/app/pkg/ginx"
)

// Dashboard 看板报告接口
// GET /api/v1/intelligence/dashboard
func (h *IntelHandler) Dashboard(c *gin.Context) {
	report, err := h.intelService.Dashboard(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, report)
}
