package domain

import (
	"time"
)

type DeploymentState string

const (
	DeploymentStateUnspecified DeploymentState = "DEPLOYMENT_STATE_UNSPECIFIED"
	DeploymentStateDeployed    DeploymentState = "DEPLOYED"
	DeploymentStateUndeployed  DeploymentState = "UNDEPLOYED"
)

type ClassificationType string

const (
	ClassificationTypeMulticlass ClassificationType = "MULTICLASS"
	ClassificationTypeMultilabel ClassificationType = "MULTILABEL"
)

// ModelMetadata is the per-type payload of a model. Exactly one concrete
// type is set on any model returned by the service.
type ModelMetadata interface {
	modelMetadata()
}

type TextSentimentModelMetadata struct{}

func (TextSentimentModelMetadata) modelMetadata() {}

type TextClassificationModelMetadata struct {
	ClassificationType ClassificationType `json:"classification_type"`
}

func (TextClassificationModelMetadata) modelMetadata() {}

type Model struct {
	Name            string          `json:"name"`
	DisplayName     string          `json:"display_name"`
	DatasetID       string          `json:"dataset_id"`
	CreateTime      time.Time       `json:"create_time"`
	UpdateTime      time.Time       `json:"update_time"`
	DeploymentState DeploymentState `json:"deployment_state"`
	Metadata        ModelMetadata   `json:"metadata,omitempty"`
}

// ID returns the model's identifier, the final segment of its resource name.
func (m *Model) ID() string {
	return ResourceID(m.Name)
}
