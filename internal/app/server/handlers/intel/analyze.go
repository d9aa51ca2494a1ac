package intel

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kopik/internal/app/pkg/ginx"
)

// analyzeRequest 分析触发请求体（可省略）
type analyzeRequest struct {
	Persist bool `json:"persist" example:"true"`
}

// Analyze 触发分析接口
// POST /api/v1/intelligence/analyze?wait=10
func (h *IntelHandler) Analyze(c *gin.Context) {
	waitSeconds := 0
	if waitStr := c.Query("wait"); waitStr != "" {
		if w, err := strconv.Atoi(waitStr); err == nil && w > 0 {
			waitSeconds = w
		}
	}

	// 请求体可省略，默认落库
	req := analyzeRequest{Persist: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			ginx.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.intelService.TriggerAnalysis(c.Request.Context(), req.Persist, waitSeconds)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	if result.Completed {
		ginx.Success(c, result.Report)
		return
	}

	ginx.Processing(c, result.RequestID, "/api/v1/intelligence/dashboard")
}
