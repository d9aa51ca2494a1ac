package model

import "errors"

var (
	ErrEmptyDescription     = errors.New("recommendation description cannot be empty")
	ErrConfidenceOutOfRange = errors.New("confidence must be within [0, 100]")
	ErrNegativeImpact       = errors.New("estimated impact cannot be negative")
)

// Recommendation 经营建议（分析器产出，构造后不可变）
// EstimatedImpact 为预估收益（货币单位），可为 0 但不可为负
type Recommendation struct {
	Description     string   `json:"description"`
	Confidence      float64  `json:"confidence"`
	EstimatedImpact float64  `json:"profit_impact"`
	Category        Category `json:"category"`
}

// NewRecommendation 创建建议（构造时校验置信度区间与收益非负）
func NewRecommendation(description string, confidence, estimatedImpact float64, category Category) (Recommendation, error) {
	if description == "" {
		return Recommendation{}, ErrEmptyDescription
	}
	if confidence < 0 || confidence > 100 {
		return Recommendation{}, ErrConfidenceOutOfRange
	}
	if estimatedImpact < 0 {
		return Recommendation{}, ErrNegativeImpact
	}
	if !category.Valid() {
		return Recommendation{}, ErrInvalidCategory
	}

	return Recommendation{
		Description:     description,
		Confidence:      confidence,
		EstimatedImpact: estimatedImpact,
		Category:        category,
	}, nil
}
