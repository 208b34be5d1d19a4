package emulator

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-model-cli/internal/automl"
	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

const testBasePath = "/v1beta1/projects/" + testProject + "/locations/" + testRegion

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(&config.EmulatorConfig{Host: "127.0.0.1", Port: 0, OperationDelay: 0})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func TestCreateModelEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	status, data := doRequest(t, ts, http.MethodPost, testBasePath+"/models",
		`{"displayName":"web-feedback","datasetId":"TST866246944137969664","textSentimentModelMetadata":{}}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var op automl.Operation
	require.NoError(t, json.Unmarshal(data, &op))
	assert.Contains(t, op.Name, "/operations/")
	assert.True(t, op.Done)

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models", "")
	require.Equal(t, http.StatusOK, status)

	var list automl.ListModelsResponse
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list.Model, 1)
	assert.Equal(t, "web-feedback", list.Model[0].DisplayName)
	assert.NotNil(t, list.Model[0].TextSentimentModelMetadata)
	assert.Equal(t, string(domain.DeploymentStateUndeployed), list.Model[0].DeploymentState)

	modelID := domain.ResourceID(list.Model[0].Name)
	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models/"+modelID, "")
	require.Equal(t, http.StatusOK, status)

	var m automl.Model
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "web-feedback", m.DisplayName)
	assert.NotNil(t, m.CreateTime)
}

func TestCreateModelRejectsBadInput(t *testing.T) {
	_, ts := newTestServer(t)

	status, data := doRequest(t, ts, http.MethodPost, testBasePath+"/models",
		`{"displayName":"bad","datasetId":"banana","textSentimentModelMetadata":{}}`)
	require.Equal(t, http.StatusBadRequest, status)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, http.StatusBadRequest, env.Error.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Status)
	assert.Contains(t, env.Error.Message, "banana")

	status, _ = doRequest(t, ts, http.MethodPost, testBasePath+"/models", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMissingModelEnvelope(t *testing.T) {
	_, ts := newTestServer(t)

	status, data := doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST404", "")
	require.Equal(t, http.StatusNotFound, status)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, http.StatusNotFound, env.Error.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Status)
	assert.Contains(t, env.Error.Message, "TST404")
}

func TestListModelsRejectsBadFilter(t *testing.T) {
	_, ts := newTestServer(t)

	status, data := doRequest(t, ts, http.MethodGet, testBasePath+"/models?filter=display_name%3Dfoo", "")
	require.Equal(t, http.StatusBadRequest, status)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Status)
}

func TestEvaluationEndpoints(t *testing.T) {
	srv, ts := newTestServer(t)

	srv.Store().SeedModel(&domain.Model{
		Name:        domain.ModelPath(testProject, testRegion, "TST100"),
		DisplayName: "scored",
		Metadata:    domain.TextSentimentModelMetadata{},
	})
	srv.Store().SeedEvaluation(&domain.ModelEvaluation{
		Name:                  domain.EvaluationPath(testProject, testRegion, "TST100", "900"),
		EvaluatedExampleCount: 321,
		Metrics:               sentimentMetrics,
	})

	status, data := doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST100/modelEvaluations", "")
	require.Equal(t, http.StatusOK, status)

	var list automl.ListModelEvaluationsResponse
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list.ModelEvaluation, 1)
	assert.Empty(t, list.ModelEvaluation[0].AnnotationSpecID)

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST100/modelEvaluations/900", "")
	require.Equal(t, http.StatusOK, status)

	var eval automl.ModelEvaluation
	require.NoError(t, json.Unmarshal(data, &eval))
	require.NotNil(t, eval.TextSentimentEvaluationMetrics)
	assert.InDelta(t, 0.8527, eval.TextSentimentEvaluationMetrics.Precision, 1e-9)
	assert.InDelta(t, 0.7308, eval.TextSentimentEvaluationMetrics.QuadraticKappa, 1e-9)
	assert.Equal(t, int32(321), eval.EvaluatedExampleCount)

	status, _ = doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST100/modelEvaluations/404", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeploymentEndpoints(t *testing.T) {
	srv, ts := newTestServer(t)

	srv.Store().SeedModel(&domain.Model{
		Name:            domain.ModelPath(testProject, testRegion, "TST200"),
		DisplayName:     "toggles",
		DeploymentState: domain.DeploymentStateUndeployed,
		Metadata:        domain.TextSentimentModelMetadata{},
	})

	status, data := doRequest(t, ts, http.MethodPost, testBasePath+"/models/TST200/deploy", "")
	require.Equal(t, http.StatusOK, status, string(data))

	var op automl.Operation
	require.NoError(t, json.Unmarshal(data, &op))
	assert.True(t, op.Done)

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST200", "")
	require.Equal(t, http.StatusOK, status)

	var m automl.Model
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, string(domain.DeploymentStateDeployed), m.DeploymentState)

	status, _ = doRequest(t, ts, http.MethodPost, testBasePath+"/models/TST200/undeploy", "")
	require.Equal(t, http.StatusOK, status)

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models/TST200", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, string(domain.DeploymentStateUndeployed), m.DeploymentState)
}

func TestOperationEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	status, data := doRequest(t, ts, http.MethodPost, testBasePath+"/models",
		`{"displayName":"op-check","datasetId":"TST1","textSentimentModelMetadata":{}}`)
	require.Equal(t, http.StatusOK, status)

	var op automl.Operation
	require.NoError(t, json.Unmarshal(data, &op))

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/operations/"+domain.ResourceID(op.Name), "")
	require.Equal(t, http.StatusOK, status)

	var fetched automl.Operation
	require.NoError(t, json.Unmarshal(data, &fetched))
	assert.Equal(t, op.Name, fetched.Name)
	assert.True(t, fetched.Done)
	require.NotNil(t, fetched.Metadata)
	assert.Equal(t, 100, fetched.Metadata.ProgressPercent)

	status, _ = doRequest(t, ts, http.MethodGet, testBasePath+"/operations/TRN404", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListModelsPaginationEndpoint(t *testing.T) {
	srv, ts := newTestServer(t)

	for _, id := range []string{"TST001", "TST002", "TST003"} {
		srv.Store().SeedModel(&domain.Model{
			Name:        domain.ModelPath(testProject, testRegion, id),
			DisplayName: id,
			Metadata:    domain.TextSentimentModelMetadata{},
		})
	}

	status, data := doRequest(t, ts, http.MethodGet, testBasePath+"/models?pageSize=2", "")
	require.Equal(t, http.StatusOK, status)

	var first automl.ListModelsResponse
	require.NoError(t, json.Unmarshal(data, &first))
	require.Len(t, first.Model, 2)
	require.NotEmpty(t, first.NextPageToken)

	status, data = doRequest(t, ts, http.MethodGet, testBasePath+"/models?pageSize=2&pageToken="+first.NextPageToken, "")
	require.Equal(t, http.StatusOK, status)

	var second automl.ListModelsResponse
	require.NoError(t, json.Unmarshal(data, &second))
	require.Len(t, second.Model, 1)
	assert.Empty(t, second.NextPageToken)
	assert.Equal(t, "TST003", domain.ResourceID(second.Model[0].Name))
}
