package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/plcgo/ladderc/compile"
	"github.com/plcgo/ladderc/diag"
	"github.com/plcgo/ladderc/internal/metrics"
	"github.com/plcgo/ladderc/ir"
)

// Server holds the dependencies one running HTTP server needs: a validator
// instance (expensive to construct, so built once and reused) and the
// metrics collectors it updates around every compile call.
type Server struct {
	validate *validator.Validate
	metrics  *metrics.Collectors
}

// NewServer returns a Server ready to be mounted with Router.
func NewServer(m *metrics.Collectors) *Server {
	return &Server{validate: validator.New(), metrics: m}
}

// Router builds the gin engine: a single POST /compile endpoint plus a
// liveness probe at GET /healthz.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/compile", s.handleCompile)

	return r
}

func (s *Server) handleCompile(c *gin.Context) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	out := compile.Compile(req.toLadder())

	if s.metrics != nil {
		errors, warnings := countDiagnostics(out.Errors)
		s.metrics.Observe(time.Since(start).Seconds(), len(out.Rungs), errors, warnings)
	}

	c.JSON(http.StatusOK, out)
}

// countDiagnostics tallies an Output's diagnostics by severity for metrics.
func countDiagnostics(entries []ir.Diagnostic) (errors, warnings int) {
	for _, e := range entries {
		switch e.Severity {
		case string(diag.SeverityError):
			errors++
		case string(diag.SeverityWarning):
			warnings++
		}
	}
	return errors, warnings
}
