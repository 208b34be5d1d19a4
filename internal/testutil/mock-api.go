package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sentiment-model-cli/internal/domain"
)

// MockModelAPI is a mock of ModelAPI.
type MockModelAPI struct {
	mock.Mock
}

func (m *MockModelAPI) CreateModel(ctx context.Context, parent string, model *domain.Model) (*domain.Operation, error) {
	args := m.Called(ctx, parent, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockModelAPI) GetModel(ctx context.Context, name string) (*domain.Model, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockModelAPI) ListModels(ctx context.Context, parent, filter string) domain.ModelIterator {
	args := m.Called(ctx, parent, filter)
	if args.Get(0) == nil {
		return &ModelSliceIterator{}
	}
	return args.Get(0).(domain.ModelIterator)
}

func (m *MockModelAPI) DeleteModel(ctx context.Context, name string) (*domain.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockModelAPI) DeployModel(ctx context.Context, name string) (*domain.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockModelAPI) UndeployModel(ctx context.Context, name string) (*domain.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockModelAPI) GetModelEvaluation(ctx context.Context, name string) (*domain.ModelEvaluation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelEvaluation), args.Error(1)
}

func (m *MockModelAPI) ListModelEvaluations(ctx context.Context, parent string) domain.EvaluationIterator {
	args := m.Called(ctx, parent)
	if args.Get(0) == nil {
		return &EvaluationSliceIterator{}
	}
	return args.Get(0).(domain.EvaluationIterator)
}

func (m *MockModelAPI) GetOperation(ctx context.Context, name string) (*domain.Operation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

// ModelSliceIterator yields a fixed set of models, then ErrDone. Err, when
// set, is returned instead of items.
type ModelSliceIterator struct {
	Models []*domain.Model
	Err    error
	pos    int
}

func (it *ModelSliceIterator) Next() (*domain.Model, error) {
	if it.Err != nil {
		return nil, it.Err
	}
	if it.pos >= len(it.Models) {
		return nil, domain.ErrDone
	}
	m := it.Models[it.pos]
	it.pos++
	return m, nil
}

// EvaluationSliceIterator yields a fixed set of evaluations, then ErrDone.
type EvaluationSliceIterator struct {
	Evaluations []*domain.ModelEvaluation
	Err         error
	pos         int
}

func (it *EvaluationSliceIterator) Next() (*domain.ModelEvaluation, error) {
	if it.Err != nil {
		return nil, it.Err
	}
	if it.pos >= len(it.Evaluations) {
		return nil, domain.ErrDone
	}
	e := it.Evaluations[it.pos]
	it.pos++
	return e, nil
}
