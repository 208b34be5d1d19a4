package usecase

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

// WaitPolicy bounds how often and for how long a long-running operation is
// polled.
type WaitPolicy struct {
	Interval time.Duration
	Timeout  time.Duration
}

type OperationUseCase struct {
	api  domain.ModelAPI
	wait WaitPolicy
}

func NewOperationUseCase(api domain.ModelAPI, cfg *config.Config) *OperationUseCase {
	return &OperationUseCase{
		api: api,
		wait: WaitPolicy{
			Interval: cfg.Operation.PollInterval,
			Timeout:  cfg.Operation.PollTimeout,
		},
	}
}

// Status fetches the operation's current snapshot without waiting.
func (uc *OperationUseCase) Status(ctx context.Context, name string) (*domain.Operation, error) {
	return uc.api.GetOperation(ctx, name)
}

// Wait polls the operation until it completes, fails, or the policy's
// timeout elapses.
func (uc *OperationUseCase) Wait(ctx context.Context, name string) (*domain.Operation, error) {
	return awaitOperation(ctx, uc.api, &domain.Operation{Name: name}, uc.wait)
}

// awaitOperation polls until the operation reports done. A done operation
// that recorded a failure is returned together with that failure.
func awaitOperation(ctx context.Context, api domain.ModelAPI, op *domain.Operation, policy WaitPolicy) (*domain.Operation, error) {
	if op.Done {
		return op, op.Err()
	}

	if policy.Interval <= 0 {
		policy.Interval = 2 * time.Second
	}
	if policy.Timeout <= 0 {
		policy.Timeout = 20 * time.Minute
	}

	last := op
	err := wait.PollUntilContextTimeout(ctx, policy.Interval, policy.Timeout, true, func(ctx context.Context) (bool, error) {
		current, err := api.GetOperation(ctx, op.Name)
		if err != nil {
			return false, err
		}
		last = current
		return current.Done, nil
	})
	if err != nil {
		return last, fmt.Errorf("wait for operation %s: %w", op.Name, err)
	}

	return last, last.Err()
}
