package emulator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"sentiment-model-cli/internal/automl"
	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the emulator over the same REST surface the hosted service
// offers, scoped to the v1beta1 model endpoints the CLI uses.
type Server struct {
	cfg    *config.EmulatorConfig
	store  *Store
	engine *gin.Engine
}

func New(cfg *config.EmulatorConfig) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:   cfg,
		store: NewStore(cfg.OperationDelay),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger())

	loc := engine.Group("/v1beta1/projects/:project/locations/:location")
	loc.POST("/models", s.createModel)
	loc.GET("/models", s.listModels)
	loc.GET("/models/:model", s.getModel)
	loc.DELETE("/models/:model", s.deleteModel)
	loc.POST("/models/:model/deploy", s.deployModel)
	loc.POST("/models/:model/undeploy", s.undeployModel)
	loc.GET("/models/:model/modelEvaluations", s.listEvaluations)
	loc.GET("/models/:model/modelEvaluations/:evaluation", s.getEvaluation)
	loc.GET("/operations/:operation", s.getOperation)

	s.engine = engine
	return s
}

// Store exposes the backing state so tests can stage fixtures.
func (s *Server) Store() *Store { return s.store }

// Handler returns the HTTP handler, for mounting the emulator in an
// httptest server.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":            addr,
			"operation_delay": s.cfg.OperationDelay.String(),
		}).Info("Emulator listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down emulator...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown emulator: %w", err)
	}
	return <-errCh
}

func (s *Server) createModel(c *gin.Context) {
	var req automl.Model
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatus(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body: "+err.Error())
		return
	}

	op, err := s.store.CreateModel(c.Param("project"), c.Param("location"), automl.DecodeModel(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeOperation(op))
}

func (s *Server) getModel(c *gin.Context) {
	m, err := s.store.GetModel(c.Param("project"), c.Param("location"), c.Param("model"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeModel(m))
}

func (s *Server) listModels(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	models, next, err := s.store.ListModels(
		c.Param("project"), c.Param("location"),
		c.Query("filter"), pageSize, c.Query("pageToken"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := automl.ListModelsResponse{NextPageToken: next}
	for _, m := range models {
		resp.Model = append(resp.Model, automl.EncodeModel(m))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteModel(c *gin.Context) {
	op, err := s.store.DeleteModel(c.Param("project"), c.Param("location"), c.Param("model"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeOperation(op))
}

func (s *Server) deployModel(c *gin.Context) {
	op, err := s.store.DeployModel(c.Param("project"), c.Param("location"), c.Param("model"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeOperation(op))
}

func (s *Server) undeployModel(c *gin.Context) {
	op, err := s.store.UndeployModel(c.Param("project"), c.Param("location"), c.Param("model"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeOperation(op))
}

func (s *Server) getEvaluation(c *gin.Context) {
	e, err := s.store.GetEvaluation(
		c.Param("project"), c.Param("location"),
		c.Param("model"), c.Param("evaluation"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeEvaluation(e))
}

func (s *Server) listEvaluations(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	evals, next, err := s.store.ListEvaluations(
		c.Param("project"), c.Param("location"), c.Param("model"),
		pageSize, c.Query("pageToken"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := automl.ListModelEvaluationsResponse{NextPageToken: next}
	for _, e := range evals {
		resp.ModelEvaluation = append(resp.ModelEvaluation, automl.EncodeEvaluation(e))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getOperation(c *gin.Context) {
	op, err := s.store.GetOperation(c.Param("project"), c.Param("location"), c.Param("operation"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, automl.EncodeOperation(op))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrModelNotFound),
		errors.Is(err, ErrEvaluationNotFound),
		errors.Is(err, ErrOperationNotFound):
		writeStatus(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrInvalidFilter),
		errors.Is(err, ErrInvalidPageToken),
		errors.Is(err, domain.ErrInvalidDisplayName),
		errors.Is(err, domain.ErrInvalidDatasetID):
		writeStatus(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, ErrQuotaExceeded):
		writeStatus(c, http.StatusTooManyRequests, "RESOURCE_EXHAUSTED", err.Error())
	default:
		writeStatus(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func writeStatus(c *gin.Context, code int, status, message string) {
	c.JSON(code, gin.H{"error": gin.H{
		"code":    code,
		"message": message,
		"status":  status,
	}})
}
