package automl

import (
	"time"

	"sentiment-model-cli/internal/domain"
)

// Wire representations of the v1beta1 REST surface, shared by the client and
// the emulator. Field names follow the service's camelCase JSON; timestamps
// are RFC 3339.

type Model struct {
	Name            string     `json:"name,omitempty"`
	DisplayName     string     `json:"displayName,omitempty"`
	DatasetID       string     `json:"datasetId,omitempty"`
	CreateTime      *time.Time `json:"createTime,omitempty"`
	UpdateTime      *time.Time `json:"updateTime,omitempty"`
	DeploymentState string     `json:"deploymentState,omitempty"`

	TextSentimentModelMetadata      *TextSentimentModelMetadata      `json:"textSentimentModelMetadata,omitempty"`
	TextClassificationModelMetadata *TextClassificationModelMetadata `json:"textClassificationModelMetadata,omitempty"`
}

type TextSentimentModelMetadata struct{}

type TextClassificationModelMetadata struct {
	ClassificationType string `json:"classificationType,omitempty"`
}

type ModelEvaluation struct {
	Name                  string     `json:"name,omitempty"`
	AnnotationSpecID      string     `json:"annotationSpecId,omitempty"`
	CreateTime            *time.Time `json:"createTime,omitempty"`
	EvaluatedExampleCount int32      `json:"evaluatedExampleCount,omitempty"`

	TextSentimentEvaluationMetrics  *TextSentimentEvaluationMetrics  `json:"textSentimentEvaluationMetrics,omitempty"`
	ClassificationEvaluationMetrics *ClassificationEvaluationMetrics `json:"classificationEvaluationMetrics,omitempty"`
}

type TextSentimentEvaluationMetrics struct {
	Precision         float64 `json:"precision,omitempty"`
	Recall            float64 `json:"recall,omitempty"`
	F1Score           float64 `json:"f1Score,omitempty"`
	MeanAbsoluteError float64 `json:"meanAbsoluteError,omitempty"`
	MeanSquaredError  float64 `json:"meanSquaredError,omitempty"`
	LinearKappa       float64 `json:"linearKappa,omitempty"`
	QuadraticKappa    float64 `json:"quadraticKappa,omitempty"`
}

type ClassificationEvaluationMetrics struct {
	AUPRC   float64 `json:"auPrc,omitempty"`
	AUROC   float64 `json:"auRoc,omitempty"`
	LogLoss float64 `json:"logLoss,omitempty"`
}

type Operation struct {
	Name     string             `json:"name,omitempty"`
	Metadata *OperationMetadata `json:"metadata,omitempty"`
	Done     bool               `json:"done,omitempty"`
	Error    *Status            `json:"error,omitempty"`
}

type OperationMetadata struct {
	CreateTime      *time.Time `json:"createTime,omitempty"`
	UpdateTime      *time.Time `json:"updateTime,omitempty"`
	ProgressPercent int        `json:"progressPercent,omitempty"`
}

type Status struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type ListModelsResponse struct {
	Model         []*Model `json:"model,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

type ListModelEvaluationsResponse struct {
	ModelEvaluation []*ModelEvaluation `json:"modelEvaluation,omitempty"`
	NextPageToken   string             `json:"nextPageToken,omitempty"`
}

func EncodeModel(m *domain.Model) *Model {
	out := &Model{
		Name:            m.Name,
		DisplayName:     m.DisplayName,
		DatasetID:       m.DatasetID,
		DeploymentState: string(m.DeploymentState),
	}
	if !m.CreateTime.IsZero() {
		t := m.CreateTime
		out.CreateTime = &t
	}
	if !m.UpdateTime.IsZero() {
		t := m.UpdateTime
		out.UpdateTime = &t
	}

	switch md := m.Metadata.(type) {
	case domain.TextSentimentModelMetadata:
		out.TextSentimentModelMetadata = &TextSentimentModelMetadata{}
	case domain.TextClassificationModelMetadata:
		out.TextClassificationModelMetadata = &TextClassificationModelMetadata{
			ClassificationType: string(md.ClassificationType),
		}
	}

	return out
}

func DecodeModel(m *Model) *domain.Model {
	out := &domain.Model{
		Name:            m.Name,
		DisplayName:     m.DisplayName,
		DatasetID:       m.DatasetID,
		DeploymentState: domain.DeploymentState(m.DeploymentState),
	}
	if m.CreateTime != nil {
		out.CreateTime = *m.CreateTime
	}
	if m.UpdateTime != nil {
		out.UpdateTime = *m.UpdateTime
	}

	switch {
	case m.TextSentimentModelMetadata != nil:
		out.Metadata = domain.TextSentimentModelMetadata{}
	case m.TextClassificationModelMetadata != nil:
		out.Metadata = domain.TextClassificationModelMetadata{
			ClassificationType: domain.ClassificationType(m.TextClassificationModelMetadata.ClassificationType),
		}
	}

	return out
}

func EncodeEvaluation(e *domain.ModelEvaluation) *ModelEvaluation {
	out := &ModelEvaluation{
		Name:                  e.Name,
		AnnotationSpecID:      e.AnnotationSpecID,
		EvaluatedExampleCount: e.EvaluatedExampleCount,
	}
	if !e.CreateTime.IsZero() {
		t := e.CreateTime
		out.CreateTime = &t
	}

	switch m := e.Metrics.(type) {
	case domain.TextSentimentEvaluationMetrics:
		out.TextSentimentEvaluationMetrics = &TextSentimentEvaluationMetrics{
			Precision:         m.Precision,
			Recall:            m.Recall,
			F1Score:           m.F1Score,
			MeanAbsoluteError: m.MeanAbsoluteError,
			MeanSquaredError:  m.MeanSquaredError,
			LinearKappa:       m.LinearKappa,
			QuadraticKappa:    m.QuadraticKappa,
		}
	case domain.TextClassificationEvaluationMetrics:
		out.ClassificationEvaluationMetrics = &ClassificationEvaluationMetrics{
			AUPRC:   m.AUPRC,
			AUROC:   m.AUROC,
			LogLoss: m.LogLoss,
		}
	}

	return out
}

func DecodeEvaluation(e *ModelEvaluation) *domain.ModelEvaluation {
	out := &domain.ModelEvaluation{
		Name:                  e.Name,
		AnnotationSpecID:      e.AnnotationSpecID,
		EvaluatedExampleCount: e.EvaluatedExampleCount,
	}
	if e.CreateTime != nil {
		out.CreateTime = *e.CreateTime
	}

	switch {
	case e.TextSentimentEvaluationMetrics != nil:
		m := e.TextSentimentEvaluationMetrics
		out.Metrics = domain.TextSentimentEvaluationMetrics{
			Precision:         m.Precision,
			Recall:            m.Recall,
			F1Score:           m.F1Score,
			MeanAbsoluteError: m.MeanAbsoluteError,
			MeanSquaredError:  m.MeanSquaredError,
			LinearKappa:       m.LinearKappa,
			QuadraticKappa:    m.QuadraticKappa,
		}
	case e.ClassificationEvaluationMetrics != nil:
		m := e.ClassificationEvaluationMetrics
		out.Metrics = domain.TextClassificationEvaluationMetrics{
			AUPRC:   m.AUPRC,
			AUROC:   m.AUROC,
			LogLoss: m.LogLoss,
		}
	}

	return out
}

func EncodeOperation(op *domain.Operation) *Operation {
	out := &Operation{
		Name: op.Name,
		Done: op.Done,
		Metadata: &OperationMetadata{
			ProgressPercent: op.ProgressPercent,
		},
	}
	if !op.CreateTime.IsZero() {
		t := op.CreateTime
		out.Metadata.CreateTime = &t
	}
	if !op.UpdateTime.IsZero() {
		t := op.UpdateTime
		out.Metadata.UpdateTime = &t
	}
	if op.Error != nil {
		out.Error = &Status{Code: op.Error.Code, Message: op.Error.Message}
	}
	return out
}

func DecodeOperation(op *Operation) *domain.Operation {
	out := &domain.Operation{
		Name: op.Name,
		Done: op.Done,
	}
	if op.Metadata != nil {
		if op.Metadata.CreateTime != nil {
			out.CreateTime = *op.Metadata.CreateTime
		}
		if op.Metadata.UpdateTime != nil {
			out.UpdateTime = *op.Metadata.UpdateTime
		}
		out.ProgressPercent = op.Metadata.ProgressPercent
	}
	if op.Error != nil {
		out.Error = &domain.OperationError{Code: op.Error.Code, Message: op.Error.Message}
	}
	return out
}
