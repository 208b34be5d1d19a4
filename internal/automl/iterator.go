package automl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sentiment-model-cli/internal/domain"
)

const defaultPageSize = 50

// modelIterator walks a model listing page by page. Pages are fetched on
// demand; a fetch error ends the iteration and is repeated on every
// subsequent Next.
type modelIterator struct {
	ctx    context.Context
	client *Client
	parent string
	filter string

	token   string
	started bool
	buf     []*domain.Model
	err     error
}

var _ domain.ModelIterator = (*modelIterator)(nil)

func (it *modelIterator) Next() (*domain.Model, error) {
	if it.err != nil {
		return nil, it.err
	}

	for len(it.buf) == 0 {
		if it.started && it.token == "" {
			it.err = domain.ErrDone
			return nil, it.err
		}
		if err := it.fetch(); err != nil {
			it.err = err
			return nil, it.err
		}
	}

	m := it.buf[0]
	it.buf = it.buf[1:]
	return m, nil
}

func (it *modelIterator) fetch() error {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(defaultPageSize))
	if it.filter != "" {
		query.Set("filter", it.filter)
	}
	if it.token != "" {
		query.Set("pageToken", it.token)
	}

	var resp ListModelsResponse
	if err := it.client.get(it.ctx, it.parent+"/models", query, &resp); err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	it.started = true
	it.token = resp.NextPageToken
	for _, m := range resp.Model {
		it.buf = append(it.buf, DecodeModel(m))
	}
	return nil
}

type evaluationIterator struct {
	ctx    context.Context
	client *Client
	parent string

	token   string
	started bool
	buf     []*domain.ModelEvaluation
	err     error
}

var _ domain.EvaluationIterator = (*evaluationIterator)(nil)

func (it *evaluationIterator) Next() (*domain.ModelEvaluation, error) {
	if it.err != nil {
		return nil, it.err
	}

	for len(it.buf) == 0 {
		if it.started && it.token == "" {
			it.err = domain.ErrDone
			return nil, it.err
		}
		if err := it.fetch(); err != nil {
			it.err = err
			return nil, it.err
		}
	}

	e := it.buf[0]
	it.buf = it.buf[1:]
	return e, nil
}

func (it *evaluationIterator) fetch() error {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(defaultPageSize))
	if it.token != "" {
		query.Set("pageToken", it.token)
	}

	var resp ListModelEvaluationsResponse
	if err := it.client.get(it.ctx, it.parent+"/modelEvaluations", query, &resp); err != nil {
		return fmt.Errorf("list model evaluations: %w", err)
	}

	it.started = true
	it.token = resp.NextPageToken
	for _, e := range resp.ModelEvaluation {
		it.buf = append(it.buf, DecodeEvaluation(e))
	}
	return nil
}
