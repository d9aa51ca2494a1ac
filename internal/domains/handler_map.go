package domains

import (
	"kopik/common/model"
	"kopik/internal/domains/common"
	"kopik/internal/domains/handlers/intel/analyze"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	model.ActionTypeAnalyze: analyze.NewAnalyzeHandler,

	// 未来扩展示例：
	// "intel_forecast": forecast.NewForecastHandler,
}
