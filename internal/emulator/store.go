package emulator

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sentiment-model-cli/internal/domain"
)

var (
	ErrModelNotFound      = errors.New("the model was not found")
	ErrEvaluationNotFound = errors.New("the model evaluation was not found")
	ErrOperationNotFound  = errors.New("the operation was not found")
	ErrInvalidFilter      = errors.New("invalid filter expression")
	ErrInvalidPageToken   = errors.New("invalid page token")
	ErrQuotaExceeded      = errors.New("model quota exceeded for this project")
)

const (
	maxModelsPerProject = 100
	defaultPageSize     = 20
	maxPageSize         = 1000
)

var datasetIDPattern = regexp.MustCompile(`^(TST|TCN)[0-9]+$`)

// Metric values seeded onto freshly trained models. Fixed numbers keep the
// emulator's output stable across runs.
var (
	sentimentMetrics = domain.TextSentimentEvaluationMetrics{
		Precision:         0.8527,
		Recall:            0.7936,
		F1Score:           0.8221,
		MeanAbsoluteError: 0.2114,
		MeanSquaredError:  0.0856,
		LinearKappa:       0.6742,
		QuadraticKappa:    0.7308,
	}
	classificationMetrics = domain.TextClassificationEvaluationMetrics{
		AUPRC:   0.9153,
		AUROC:   0.9537,
		LogLoss: 0.2411,
	}
)

type operationState struct {
	op         *domain.Operation
	completeAt time.Time
	apply      func(s *Store)
}

// Store holds the emulator's world. Training, deployment and deletion are
// operations that complete once the configured delay elapses; completion is
// applied on access, under the store lock, so no background goroutine is
// needed and tests stay deterministic.
type Store struct {
	mu     sync.Mutex
	delay  time.Duration
	models map[string]*domain.Model
	evals  map[string]*domain.ModelEvaluation
	ops    map[string]*operationState
}

func NewStore(delay time.Duration) *Store {
	return &Store{
		delay:  delay,
		models: make(map[string]*domain.Model),
		evals:  make(map[string]*domain.ModelEvaluation),
		ops:    make(map[string]*operationState),
	}
}

// sweep completes every operation whose delay has elapsed and refreshes the
// progress of the ones still running. Callers must hold the lock.
func (s *Store) sweep() {
	now := time.Now()
	for _, st := range s.ops {
		if st.op.Done {
			continue
		}
		if now.Before(st.completeAt) {
			if s.delay > 0 {
				elapsed := s.delay - st.completeAt.Sub(now)
				pct := int(elapsed * 100 / s.delay)
				if pct > 99 {
					pct = 99
				}
				if pct < 0 {
					pct = 0
				}
				st.op.ProgressPercent = pct
			}
			continue
		}

		st.op.Done = true
		st.op.ProgressPercent = 100
		st.op.UpdateTime = now
		if st.apply != nil {
			st.apply(s)
			st.apply = nil
		}
	}
}

func (s *Store) startOperation(project, region string, now time.Time, apply func(*Store)) *domain.Operation {
	op := &domain.Operation{
		Name:       domain.OperationPath(project, region, nextID("TRN")),
		CreateTime: now,
		UpdateTime: now,
	}
	s.ops[op.Name] = &operationState{op: op, completeAt: now.Add(s.delay), apply: apply}

	if s.delay <= 0 {
		s.sweep()
	}
	return copyOperation(op)
}

func (s *Store) CreateModel(project, region string, spec *domain.Model) (*domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	if spec.DisplayName == "" {
		return nil, domain.ErrInvalidDisplayName
	}
	if !datasetIDPattern.MatchString(spec.DatasetID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDatasetID, spec.DatasetID)
	}

	prefix := domain.LocationPath(project, region) + "/models/"
	count := 0
	for name := range s.models {
		if strings.HasPrefix(name, prefix) {
			count++
		}
	}
	if count >= maxModelsPerProject {
		return nil, ErrQuotaExceeded
	}

	metadata := spec.Metadata
	if metadata == nil {
		metadata = domain.TextSentimentModelMetadata{}
	}
	idPrefix := "TST"
	if _, ok := metadata.(domain.TextClassificationModelMetadata); ok {
		idPrefix = "TCN"
	}

	now := time.Now()
	model := &domain.Model{
		Name:            domain.ModelPath(project, region, nextID(idPrefix)),
		DisplayName:     spec.DisplayName,
		DatasetID:       spec.DatasetID,
		CreateTime:      now,
		UpdateTime:      now,
		DeploymentState: domain.DeploymentStateUndeployed,
		Metadata:        metadata,
	}

	return s.startOperation(project, region, now, func(s *Store) {
		s.models[model.Name] = model
		s.seedEvaluations(model)
	}), nil
}

func (s *Store) GetModel(project, region, modelID string) (*domain.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	name := domain.ModelPath(project, region, modelID)
	m, ok := s.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return copyModel(m), nil
}

func (s *Store) ListModels(project, region, filter string, pageSize int, pageToken string) ([]*domain.Model, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	match, err := matchFilter(filter)
	if err != nil {
		return nil, "", err
	}

	prefix := domain.LocationPath(project, region) + "/models/"
	var all []*domain.Model
	for name, m := range s.models {
		if strings.HasPrefix(name, prefix) && match(m) {
			all = append(all, m)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	bounds, next, err := paginate(len(all), pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	out := make([]*domain.Model, 0, bounds.end-bounds.start)
	for _, m := range all[bounds.start:bounds.end] {
		out = append(out, copyModel(m))
	}
	return out, next, nil
}

func (s *Store) DeleteModel(project, region, modelID string) (*domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	name := domain.ModelPath(project, region, modelID)
	if _, ok := s.models[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}

	return s.startOperation(project, region, time.Now(), func(s *Store) {
		delete(s.models, name)
		evalPrefix := name + "/modelEvaluations/"
		for evalName := range s.evals {
			if strings.HasPrefix(evalName, evalPrefix) {
				delete(s.evals, evalName)
			}
		}
	}), nil
}

func (s *Store) DeployModel(project, region, modelID string) (*domain.Operation, error) {
	return s.setDeployment(project, region, modelID, domain.DeploymentStateDeployed)
}

func (s *Store) UndeployModel(project, region, modelID string) (*domain.Operation, error) {
	return s.setDeployment(project, region, modelID, domain.DeploymentStateUndeployed)
}

func (s *Store) setDeployment(project, region, modelID string, state domain.DeploymentState) (*domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	name := domain.ModelPath(project, region, modelID)
	if _, ok := s.models[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}

	return s.startOperation(project, region, time.Now(), func(s *Store) {
		if m, ok := s.models[name]; ok {
			m.DeploymentState = state
			m.UpdateTime = time.Now()
		}
	}), nil
}

func (s *Store) GetEvaluation(project, region, modelID, evaluationID string) (*domain.ModelEvaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	name := domain.EvaluationPath(project, region, modelID, evaluationID)
	e, ok := s.evals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEvaluationNotFound, name)
	}
	return copyEvaluation(e), nil
}

func (s *Store) ListEvaluations(project, region, modelID string, pageSize int, pageToken string) ([]*domain.ModelEvaluation, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	modelName := domain.ModelPath(project, region, modelID)
	if _, ok := s.models[modelName]; !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrModelNotFound, modelName)
	}

	prefix := modelName + "/modelEvaluations/"
	var all []*domain.ModelEvaluation
	for name, e := range s.evals {
		if strings.HasPrefix(name, prefix) {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	bounds, next, err := paginate(len(all), pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	out := make([]*domain.ModelEvaluation, 0, bounds.end-bounds.start)
	for _, e := range all[bounds.start:bounds.end] {
		out = append(out, copyEvaluation(e))
	}
	return out, next, nil
}

func (s *Store) GetOperation(project, region, operationID string) (*domain.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	name := domain.OperationPath(project, region, operationID)
	st, ok := s.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, name)
	}
	return copyOperation(st.op), nil
}

// SeedModel installs a model directly, bypassing training. Tests use it to
// stage fixtures.
func (s *Store) SeedModel(m *domain.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[m.Name] = copyModel(m)
}

// SeedEvaluation installs an evaluation directly.
func (s *Store) SeedEvaluation(e *domain.ModelEvaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evals[e.Name] = copyEvaluation(e)
}

func (s *Store) seedEvaluations(m *domain.Model) {
	now := time.Now()
	_, classification := m.Metadata.(domain.TextClassificationModelMetadata)

	overall := &domain.ModelEvaluation{
		Name:                  m.Name + "/modelEvaluations/" + nextID(""),
		CreateTime:            now,
		EvaluatedExampleCount: 500,
	}
	if classification {
		overall.Metrics = classificationMetrics
	} else {
		overall.Metrics = sentimentMetrics
	}
	s.evals[overall.Name] = overall

	for i, specID := range []string{"1001", "1002", "1003"} {
		e := &domain.ModelEvaluation{
			Name:                  m.Name + "/modelEvaluations/" + nextID(""),
			AnnotationSpecID:      specID,
			CreateTime:            now,
			EvaluatedExampleCount: int32(100 + 50*i),
		}
		if classification {
			mm := classificationMetrics
			mm.AUPRC -= 0.01 * float64(i)
			e.Metrics = mm
		} else {
			mm := sentimentMetrics
			mm.Precision -= 0.012 * float64(i)
			mm.Recall -= 0.02 * float64(i)
			e.Metrics = mm
		}
		s.evals[e.Name] = e
	}
}

type pageBounds struct {
	start, end int
}

func paginate(total, pageSize int, token string) (pageBounds, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := 0
	if token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return pageBounds{}, "", fmt.Errorf("%w: %q", ErrInvalidPageToken, token)
		}
		start = n
	}
	if start > total {
		start = total
	}

	end := start + pageSize
	next := ""
	if end < total {
		next = strconv.Itoa(end)
	} else {
		end = total
	}
	return pageBounds{start: start, end: end}, next, nil
}

func nextID(prefix string) string {
	return fmt.Sprintf("%s%010d", prefix, rand.Int63n(10_000_000_000))
}

func copyModel(m *domain.Model) *domain.Model {
	cp := *m
	return &cp
}

func copyEvaluation(e *domain.ModelEvaluation) *domain.ModelEvaluation {
	cp := *e
	return &cp
}

func copyOperation(op *domain.Operation) *domain.Operation {
	cp := *op
	if op.Error != nil {
		e := *op.Error
		cp.Error = &e
	}
	return &cp
}
