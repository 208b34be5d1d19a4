package usecase

import (
	"context"

	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

type EvaluationUseCase struct {
	api     domain.ModelAPI
	project string
	region  string
}

func NewEvaluationUseCase(api domain.ModelAPI, cfg *config.Config) *EvaluationUseCase {
	return &EvaluationUseCase{
		api:     api,
		project: cfg.Project.ID,
		region:  cfg.Project.Region,
	}
}

func (uc *EvaluationUseCase) List(ctx context.Context, modelID string) domain.EvaluationIterator {
	return uc.api.ListModelEvaluations(ctx, domain.ModelPath(uc.project, uc.region, modelID))
}

func (uc *EvaluationUseCase) Get(ctx context.Context, modelID, evaluationID string) (*domain.ModelEvaluation, error) {
	if evaluationID == "" {
		return nil, domain.ErrInvalidEvaluationID
	}
	return uc.api.GetModelEvaluation(ctx, domain.EvaluationPath(uc.project, uc.region, modelID, evaluationID))
}

// Overall finds the model's aggregate evaluation, the one scored across all
// annotation specs, and re-reads it by name. When several qualify the last
// listed wins.
func (uc *EvaluationUseCase) Overall(ctx context.Context, modelID string) (*domain.ModelEvaluation, error) {
	it := uc.List(ctx, modelID)

	var overall *domain.ModelEvaluation
	for {
		e, err := it.Next()
		if err == domain.ErrDone {
			break
		}
		if err != nil {
			return nil, err
		}
		if e.IsOverall() {
			overall = e
		}
	}

	if overall == nil {
		return nil, domain.ErrOverallEvaluationNotFound
	}

	return uc.api.GetModelEvaluation(ctx, overall.Name)
}
