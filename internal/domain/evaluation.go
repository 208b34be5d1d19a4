package domain

import (
	"time"
)

// EvaluationMetrics is the per-type metrics payload of a model evaluation.
type EvaluationMetrics interface {
	evaluationMetrics()
}

type TextSentimentEvaluationMetrics struct {
	Precision         float64 `json:"precision"`
	Recall            float64 `json:"recall"`
	F1Score           float64 `json:"f1_score"`
	MeanAbsoluteError float64 `json:"mean_absolute_error"`
	MeanSquaredError  float64 `json:"mean_squared_error"`
	LinearKappa       float64 `json:"linear_kappa"`
	QuadraticKappa    float64 `json:"quadratic_kappa"`
}

func (TextSentimentEvaluationMetrics) evaluationMetrics() {}

type TextClassificationEvaluationMetrics struct {
	AUPRC   float64 `json:"au_prc"`
	AUROC   float64 `json:"au_roc"`
	LogLoss float64 `json:"log_loss"`
}

func (TextClassificationEvaluationMetrics) evaluationMetrics() {}

type ModelEvaluation struct {
	Name                  string            `json:"name"`
	AnnotationSpecID      string            `json:"annotation_spec_id"`
	CreateTime            time.Time         `json:"create_time"`
	EvaluatedExampleCount int32             `json:"evaluated_example_count"`
	Metrics               EvaluationMetrics `json:"metrics,omitempty"`
}

// ID returns the evaluation's identifier, the final segment of its resource name.
func (e *ModelEvaluation) ID() string {
	return ResourceID(e.Name)
}

// IsOverall reports whether the evaluation aggregates every annotation spec
// rather than scoring a single one.
func (e *ModelEvaluation) IsOverall() bool {
	return e.AnnotationSpecID == ""
}
