// Package report renders models, evaluations and operations for terminal
// output. All user-visible formatting lives here so the command layer stays
// free of string assembly.
package report

import (
	"fmt"
	"io"
	"time"

	"sentiment-model-cli/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

// Timestamp renders a service timestamp in UTC at seconds precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// Percent renders a ratio as a percentage with two decimals.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// DeploymentState folds the service's deployment enum into the two words
// shown to users. Anything but DEPLOYED reads as undeployed.
func DeploymentState(s domain.DeploymentState) string {
	if s == domain.DeploymentStateDeployed {
		return "deployed"
	}
	return "undeployed"
}

func WriteModel(w io.Writer, m *domain.Model) {
	fmt.Fprintf(w, "Model name: %s\n", m.Name)
	fmt.Fprintf(w, "Model id: %s\n", m.ID())
	fmt.Fprintf(w, "Model display name: %s\n", m.DisplayName)
	fmt.Fprintf(w, "Model create time: %s\n", Timestamp(m.CreateTime))
	fmt.Fprintf(w, "Model deployment state: %s\n", DeploymentState(m.DeploymentState))
}

func WriteOperation(w io.Writer, op *domain.Operation) {
	fmt.Fprintf(w, "Operation name: %s\n", op.Name)
	fmt.Fprintf(w, "Operation done: %t\n", op.Done)
	fmt.Fprintf(w, "Operation progress: %d%%\n", op.ProgressPercent)
	if !op.CreateTime.IsZero() {
		fmt.Fprintf(w, "Operation create time: %s\n", Timestamp(op.CreateTime))
	}
	if !op.UpdateTime.IsZero() {
		fmt.Fprintf(w, "Operation update time: %s\n", Timestamp(op.UpdateTime))
	}
	if op.Error != nil {
		fmt.Fprintf(w, "Operation error: %s\n", op.Error.Message)
	}
}

// WriteEvaluation prints the raw metric values of a single evaluation.
func WriteEvaluation(w io.Writer, e *domain.ModelEvaluation) {
	switch m := e.Metrics.(type) {
	case domain.TextSentimentEvaluationMetrics:
		fmt.Fprintf(w, "Sentiment model precision: %v\n", m.Precision)
		fmt.Fprintf(w, "Sentiment model recall: %v\n", m.Recall)
		fmt.Fprintf(w, "Sentiment model f1 score: %v\n", m.F1Score)
	case domain.TextClassificationEvaluationMetrics:
		fmt.Fprintf(w, "Classification model AU-PRC: %v\n", m.AUPRC)
		fmt.Fprintf(w, "Classification model AU-ROC: %v\n", m.AUROC)
		fmt.Fprintf(w, "Classification model log loss: %v\n", m.LogLoss)
	}
}

// WriteSentimentSummary prints the percentage view of an overall sentiment
// evaluation.
func WriteSentimentSummary(w io.Writer, m domain.TextSentimentEvaluationMetrics) {
	fmt.Fprintf(w, "Model Precision: %s\n", Percent(m.Precision))
	fmt.Fprintf(w, "Model Recall: %s\n", Percent(m.Recall))
	fmt.Fprintf(w, "Model F1 score: %s\n", Percent(m.F1Score))
	fmt.Fprintf(w, "Model absolute error: %s\n", Percent(m.MeanAbsoluteError))
	fmt.Fprintf(w, "Model mean squared error: %s\n", Percent(m.MeanSquaredError))
	fmt.Fprintf(w, "Model linear kappa: %s\n", Percent(m.LinearKappa))
	fmt.Fprintf(w, "Model quadratic kappa: %s\n", Percent(m.QuadraticKappa))
}
