package domain

import "context"

// ModelAPI is the remote model-lifecycle surface consumed by the use cases.
// Implementations translate these calls into versioned REST requests against
// the managed service (or an emulator of it).
type ModelAPI interface {
	CreateModel(ctx context.Context, parent string, model *Model) (*Operation, error)
	GetModel(ctx context.Context, name string) (*Model, error)
	ListModels(ctx context.Context, parent, filter string) ModelIterator
	DeleteModel(ctx context.Context, name string) (*Operation, error)
	DeployModel(ctx context.Context, name string) (*Operation, error)
	UndeployModel(ctx context.Context, name string) (*Operation, error)
	GetModelEvaluation(ctx context.Context, name string) (*ModelEvaluation, error)
	ListModelEvaluations(ctx context.Context, parent string) EvaluationIterator
	GetOperation(ctx context.Context, name string) (*Operation, error)
}

// ModelIterator yields models one at a time, fetching result pages lazily.
// Next returns ErrDone once the listing is exhausted; any other error is
// final and repeated on subsequent calls.
type ModelIterator interface {
	Next() (*Model, error)
}

// EvaluationIterator yields model evaluations one at a time, fetching result
// pages lazily. Next returns ErrDone once the listing is exhausted.
type EvaluationIterator interface {
	Next() (*ModelEvaluation, error)
}
