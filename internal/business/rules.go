package business

// Ruleset 各分析器的固定阈值与系数
// 全部规则集中在此，方便调参与测试时替换
type Ruleset struct {
	// 库存
	WeeklyConsumptionDays  float64 // 补货收益按几天的消耗量估算
	ReorderConfidenceMin   float64 // 补货建议置信度下限
	ReorderConfidenceSpan  float64 // 置信度浮动区间宽度
	RecPriorityImpactLimit float64 // 建议派生优先级的收益分界线

	// 损耗
	HighWasteThreshold    float64 // 单品周损耗金额告警线
	ExpiredWasteThreshold float64 // 过期损耗金额告警线
	WasteReductionRate    float64 // 份量管控的损耗削减比例
	ExpiredReductionRate  float64 // FIFO 轮换的损耗削减比例

	// 天气
	RainChanceThreshold float64 // 降水概率告警线（%）
	HotTempThreshold    float64 // 高温告警线（°F）
	ColdTempThreshold   float64 // 低温告警线（°F）
	RainImpact          float64
	HotImpact           float64
	ColdImpact          float64

	// 活动
	EventAttendanceThreshold int     // 触发告警的最低预期人数
	EventHorizonDays         int     // 只关注几天内的活动
	EventUrgentDays          int     // 几天内升级为高优先级
	PerPersonProfit          float64 // 人均收益估算（$/人）
	MaxInventoryIncrease     float64 // 备货增幅上限（%）
	SportsImpactShare        float64 // 体育赛事附加建议的收益占比
	FestivalImpactShare      float64 // 节庆活动附加建议的收益占比

	// 销售
	TopSellerShare       float64 // 单品营收占比告警线
	TopSellerImpactRate  float64 // 头部单品保供建议的收益系数
	LowRevenueShare      float64 // 尾部单品营收占比下限
	MinItemsForLaggards  int     // 至少几个单品才产出销售分析
	UnderperformerImpact float64 // 尾部单品处置建议的固定收益

	// 订单
	DelayedRecoveryRate float64 // 延迟订单跟进的收益系数
	OverdueRecoveryRate float64 // 逾期订单跟进的收益系数
}

// DefaultRuleset 默认规则集
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		WeeklyConsumptionDays:  7,
		ReorderConfidenceMin:   75.0,
		ReorderConfidenceSpan:  24.0,
		RecPriorityImpactLimit: 500.0,

		HighWasteThreshold:    50.0,
		ExpiredWasteThreshold: 30.0,
		WasteReductionRate:    0.7,
		ExpiredReductionRate:  0.8,

		RainChanceThreshold: 70.0,
		HotTempThreshold:    80.0,
		ColdTempThreshold:   40.0,
		RainImpact:          200.0,
		HotImpact:           300.0,
		ColdImpact:          250.0,

		EventAttendanceThreshold: 100,
		EventHorizonDays:         7,
		EventUrgentDays:          3,
		PerPersonProfit:          5.0,
		MaxInventoryIncrease:     100.0,
		SportsImpactShare:        0.3,
		FestivalImpactShare:      0.4,

		TopSellerShare:       0.3,
		TopSellerImpactRate:  0.1,
		LowRevenueShare:      0.02,
		MinItemsForLaggards:  4,
		UnderperformerImpact: 50.0,

		DelayedRecoveryRate: 0.1,
		OverdueRecoveryRate: 0.2,
	}
}
