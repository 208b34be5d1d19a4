package emulator

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	headerRequestID  = "X-Request-ID"
	contextRequestID = "request_id"
)

// requestID echoes the caller's X-Request-ID, minting one when the
// header is absent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}

// requestLogger writes one line per served call, leveled by status and
// tagged with the project and resource kind the route touched.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := log.Fields{
			"status":     status,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(contextRequestID),
		}
		if project := c.Param("project"); project != "" {
			fields["project"] = project
		}
		if kind := resourceKind(c); kind != "" {
			fields["resource"] = kind
		}

		entry := log.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Served request")
		case status >= http.StatusBadRequest:
			entry.Warn("Served request")
		default:
			entry.Info("Served request")
		}
	}
}

// resourceKind names the AutoML resource a route serves. Unroutable
// paths have no kind.
func resourceKind(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case c.Param("evaluation") != "" || strings.HasSuffix(path, "/modelEvaluations"):
		return "modelEvaluation"
	case c.Param("operation") != "":
		return "operation"
	case c.Param("model") != "" || strings.HasSuffix(path, "/models"):
		return "model"
	default:
		return ""
	}
}
