package model

// ActionTypeAnalyze 分析任务的动作类型（路由键）
const ActionTypeAnalyze = "intel_analyze"

// AnalyzeJob 分析触发任务消息（标准化）
// 用于 apiserver → worker 的消息传递
type AnalyzeJob struct {
	Payload AnalyzePayload `json:"payload"`
}

// AnalyzePayload Job 负载
type AnalyzePayload struct {
	Data AnalyzeData `json:"data"`
}

// AnalyzeData Job 数据层
type AnalyzeData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	ActionType string `json:"action_type"` // 动作类型，固定值 "intel_analyze"
	ID         string `json:"id"`          // 业务 ID（本次运行 ID）

	// 业务数据
	Data AnalyzeBusinessData `json:"data"`
}

// AnalyzeBusinessData 分析任务业务数据
type AnalyzeBusinessData struct {
	TriggeredBy string `json:"triggered_by"` // 触发来源：api / scheduler
	Persist     bool   `json:"persist"`      // 是否持久化建议
}
