package usecase

import (
	"context"

	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

// DefaultModelFilter selects sentiment models, the kind this tool manages.
// Listings without an explicit filter use it.
const DefaultModelFilter = "text_sentiment_model_metadata:*"

type ModelUseCase struct {
	api     domain.ModelAPI
	project string
	region  string
	wait    WaitPolicy
}

func NewModelUseCase(api domain.ModelAPI, cfg *config.Config) *ModelUseCase {
	return &ModelUseCase{
		api:     api,
		project: cfg.Project.ID,
		region:  cfg.Project.Region,
		wait: WaitPolicy{
			Interval: cfg.Operation.PollInterval,
			Timeout:  cfg.Operation.PollTimeout,
		},
	}
}

// Create starts training a sentiment model on the given dataset. The
// returned operation is still running; training is not awaited.
func (uc *ModelUseCase) Create(ctx context.Context, datasetID, displayName string) (*domain.Operation, error) {
	if datasetID == "" {
		return nil, domain.ErrInvalidDatasetID
	}
	if displayName == "" {
		return nil, domain.ErrInvalidDisplayName
	}

	model := &domain.Model{
		DisplayName: displayName,
		DatasetID:   datasetID,
		Metadata:    domain.TextSentimentModelMetadata{},
	}

	return uc.api.CreateModel(ctx, domain.LocationPath(uc.project, uc.region), model)
}

func (uc *ModelUseCase) Get(ctx context.Context, modelID string) (*domain.Model, error) {
	return uc.api.GetModel(ctx, domain.ModelPath(uc.project, uc.region, modelID))
}

func (uc *ModelUseCase) List(ctx context.Context, filter string) domain.ModelIterator {
	if filter == "" {
		filter = DefaultModelFilter
	}
	return uc.api.ListModels(ctx, domain.LocationPath(uc.project, uc.region), filter)
}

// Delete removes the model and blocks until the service confirms the
// deletion finished.
func (uc *ModelUseCase) Delete(ctx context.Context, modelID string) (*domain.Operation, error) {
	op, err := uc.api.DeleteModel(ctx, domain.ModelPath(uc.project, uc.region, modelID))
	if err != nil {
		return nil, err
	}
	return awaitOperation(ctx, uc.api, op, uc.wait)
}

// Deploy brings the model online for prediction and waits for the rollout.
func (uc *ModelUseCase) Deploy(ctx context.Context, modelID string) (*domain.Operation, error) {
	op, err := uc.api.DeployModel(ctx, domain.ModelPath(uc.project, uc.region, modelID))
	if err != nil {
		return nil, err
	}
	return awaitOperation(ctx, uc.api, op, uc.wait)
}

// Undeploy takes the model offline and waits for the teardown.
func (uc *ModelUseCase) Undeploy(ctx context.Context, modelID string) (*domain.Operation, error) {
	op, err := uc.api.UndeployModel(ctx, domain.ModelPath(uc.project, uc.region, modelID))
	if err != nil {
		return nil, err
	}
	return awaitOperation(ctx, uc.api, op, uc.wait)
}
