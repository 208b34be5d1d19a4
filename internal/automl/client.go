package automl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

const (
	apiVersion      = "v1beta1"
	headerRequestID = "X-Request-ID"

	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
)

// Client talks to the managed service's REST surface.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ domain.ModelAPI = (*Client)(nil)

func NewClient(cfg *config.APIConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Endpoint, "/"),
		token:   cfg.AccessToken,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) CreateModel(ctx context.Context, parent string, model *domain.Model) (*domain.Operation, error) {
	var op Operation
	if err := c.post(ctx, parent+"/models", EncodeModel(model), &op); err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	return DecodeOperation(&op), nil
}

func (c *Client) GetModel(ctx context.Context, name string) (*domain.Model, error) {
	var m Model
	if err := c.get(ctx, name, nil, &m); err != nil {
		return nil, fmt.Errorf("get model %s: %w", name, err)
	}
	return DecodeModel(&m), nil
}

func (c *Client) ListModels(ctx context.Context, parent, filter string) domain.ModelIterator {
	return &modelIterator{ctx: ctx, client: c, parent: parent, filter: filter}
}

func (c *Client) DeleteModel(ctx context.Context, name string) (*domain.Operation, error) {
	var op Operation
	if err := c.do(ctx, http.MethodDelete, name, nil, nil, &op); err != nil {
		return nil, fmt.Errorf("delete model %s: %w", name, err)
	}
	return DecodeOperation(&op), nil
}

func (c *Client) DeployModel(ctx context.Context, name string) (*domain.Operation, error) {
	var op Operation
	if err := c.post(ctx, name+"/deploy", nil, &op); err != nil {
		return nil, fmt.Errorf("deploy model %s: %w", name, err)
	}
	return DecodeOperation(&op), nil
}

func (c *Client) UndeployModel(ctx context.Context, name string) (*domain.Operation, error) {
	var op Operation
	if err := c.post(ctx, name+"/undeploy", nil, &op); err != nil {
		return nil, fmt.Errorf("undeploy model %s: %w", name, err)
	}
	return DecodeOperation(&op), nil
}

func (c *Client) GetModelEvaluation(ctx context.Context, name string) (*domain.ModelEvaluation, error) {
	var e ModelEvaluation
	if err := c.get(ctx, name, nil, &e); err != nil {
		return nil, fmt.Errorf("get model evaluation %s: %w", name, err)
	}
	return DecodeEvaluation(&e), nil
}

func (c *Client) ListModelEvaluations(ctx context.Context, parent string) domain.EvaluationIterator {
	return &evaluationIterator{ctx: ctx, client: c, parent: parent}
}

func (c *Client) GetOperation(ctx context.Context, name string) (*domain.Operation, error) {
	var op Operation
	if err := c.get(ctx, name, nil, &op); err != nil {
		return nil, fmt.Errorf("get operation %s: %w", name, err)
	}
	return DecodeOperation(&op), nil
}

// get retries transient failures. Mutations go through do directly and run
// exactly once.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return retry.Do(
		func() error {
			return c.do(ctx, http.MethodGet, path, query, nil, out)
		},
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).WithFields(log.Fields{
				"path":    path,
				"attempt": n + 1,
			}).Debug("Retrying request")
		}),
	)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, apiVersion, path)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return err
	}
	req.Header.Set(headerRequestID, uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		apiErr.Status = body.Error.Status
		apiErr.Message = body.Error.Message
		return apiErr
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}

func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return true
}
