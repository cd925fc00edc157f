package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ketos-lab/traylims/pkg/batch"
	"github.com/ketos-lab/traylims/pkg/catalog"
	"github.com/ketos-lab/traylims/pkg/optimizer"
	"github.com/ketos-lab/traylims/pkg/version"
)

// healthHandler handles GET /health. The service holds no external
// dependencies, so a reachable process is a healthy one.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, &HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
	})
}

// listExperimentsHandler handles GET /api/v1/experiments. Backs the experiment
// picker in the production dashboard.
func (s *Server) listExperimentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, &ExperimentsResponse{Experiments: catalog.List()})
}

// optimizeHandler handles POST /api/v1/optimize.
func (s *Server) optimizeHandler(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		optimizeRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := optimizer.Optimize(req.ExperimentIDs)
	if err != nil {
		optimizeRequests.WithLabelValues("rejected").Inc()
		status, body := mapOptimizeError(err)
		c.JSON(status, body)
		return
	}

	optimizeRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, &OptimizeResponse{
		Configuration: cfg,
		TrayLife:      cfg.TrayLife(),
	})
}

// optimizeBatchHandler handles POST /api/v1/optimize/batch. Candidates are
// scored concurrently by the pool; per-candidate failures do not fail the
// batch.
func (s *Server) optimizeBatchHandler(c *gin.Context) {
	var req OptimizeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Candidates) == 0 {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: "candidates must not be empty"})
		return
	}

	results := s.pool.Evaluate(c.Request.Context(), req.Candidates)

	outcomes := make([]CandidateOutcome, len(results))
	for i, res := range results {
		outcome := CandidateOutcome{IDs: res.IDs}
		if res.Err != nil {
			outcome.Error = res.Err.Error()
		} else {
			outcome.Configuration = res.Config
			outcome.TrayLife = res.Config.TrayLife()
		}
		outcomes[i] = outcome
	}

	bestIndex, ok := batch.Best(results)
	if !ok {
		bestIndex = -1
	}

	c.JSON(http.StatusOK, &OptimizeBatchResponse{
		Candidates: outcomes,
		BestIndex:  bestIndex,
	})
}
