package response

import (
	"kopik/common/model"
	"kopik/internal/domains/common/job"
	"kopik/pkg/errorutil"
)

// AnalysisResult 分析结果（实现 ResultI 接口）
type AnalysisResult struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Report *model.Report    `json:"report,omitempty"`
	Error  *errorutil.Error `json:"error,omitempty"`
}

const (
	AnalysisStatusSuccess = "SUCCESS"
	AnalysisStatusFailed  = "FAILED"
)

// NewAnalysisResult 创建分析结果
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{}
}

// Set 实现 ResultI 接口
func (r *AnalysisResult) Set(meta *job.Meta, err error) {
	r.ID = meta.ID
	if err != nil {
		r.Status = AnalysisStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = AnalysisStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *AnalysisResult) GetStatus() string {
	return r.Status
}
