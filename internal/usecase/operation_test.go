package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentiment-model-cli/internal/domain"
	"sentiment-model-cli/internal/testutil"
)

func TestStatusFetchesSnapshot(t *testing.T) {
	api := new(testutil.MockModelAPI)
	uc := NewOperationUseCase(api, testConfig())

	name := "projects/p/locations/us-central1/operations/TRN1"
	want := &domain.Operation{Name: name, ProgressPercent: 40}
	api.On("GetOperation", mock.Anything, name).Return(want, nil).Once()

	got, err := uc.Status(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, got.Done)
	api.AssertExpectations(t)
}

func TestWaitPollsUntilDone(t *testing.T) {
	api := new(testutil.MockModelAPI)
	uc := NewOperationUseCase(api, testConfig())

	name := "projects/p/locations/us-central1/operations/TRN1"
	api.On("GetOperation", mock.Anything, name).Return(&domain.Operation{Name: name, ProgressPercent: 50}, nil).Twice()
	api.On("GetOperation", mock.Anything, name).Return(&domain.Operation{Name: name, Done: true, ProgressPercent: 100}, nil).Once()

	op, err := uc.Wait(context.Background(), name)
	require.NoError(t, err)
	assert.True(t, op.Done)
	assert.Equal(t, 100, op.ProgressPercent)
	api.AssertExpectations(t)
}

func TestWaitTimesOut(t *testing.T) {
	api := new(testutil.MockModelAPI)
	cfg := testConfig()
	cfg.Operation.PollInterval = time.Millisecond
	cfg.Operation.PollTimeout = 25 * time.Millisecond
	uc := NewOperationUseCase(api, cfg)

	name := "projects/p/locations/us-central1/operations/TRN1"
	api.On("GetOperation", mock.Anything, name).Return(&domain.Operation{Name: name}, nil)

	op, err := uc.Wait(context.Background(), name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wait for operation")
	require.NotNil(t, op)
	assert.False(t, op.Done)
}

func TestWaitAbortsOnRemoteError(t *testing.T) {
	api := new(testutil.MockModelAPI)
	uc := NewOperationUseCase(api, testConfig())

	name := "projects/p/locations/us-central1/operations/TRN404"
	api.On("GetOperation", mock.Anything, name).Return(nil, errors.New("NOT_FOUND: no such operation"))

	_, err := uc.Wait(context.Background(), name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such operation")
}

func TestWaitReturnsOperationFailure(t *testing.T) {
	api := new(testutil.MockModelAPI)
	uc := NewOperationUseCase(api, testConfig())

	name := "projects/p/locations/us-central1/operations/TRN1"
	api.On("GetOperation", mock.Anything, name).Return(&domain.Operation{
		Name:  name,
		Done:  true,
		Error: &domain.OperationError{Code: 8, Message: "training quota exceeded"},
	}, nil).Once()

	op, err := uc.Wait(context.Background(), name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "training quota exceeded")
	assert.True(t, op.Done)
}
