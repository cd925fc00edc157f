package api

import (
	"github.com/ketos-lab/traylims/pkg/catalog"
	"github.com/ketos-lab/traylims/pkg/optimizer"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ExperimentsResponse is returned by GET /api/v1/experiments.
type ExperimentsResponse struct {
	Experiments []catalog.Experiment `json:"experiments"`
}

// OptimizeResponse is returned by POST /api/v1/optimize.
type OptimizeResponse struct {
	Configuration *optimizer.Configuration `json:"configuration"`
	TrayLife      int                      `json:"tray_life"`
}

// CandidateOutcome is one candidate's result within a batch response. Exactly
// one of Configuration and Error is set.
type CandidateOutcome struct {
	IDs           []int                    `json:"experiment_ids"`
	Configuration *optimizer.Configuration `json:"configuration,omitempty"`
	TrayLife      int                      `json:"tray_life,omitempty"`
	Error         string                   `json:"error,omitempty"`
}

// OptimizeBatchResponse is returned by POST /api/v1/optimize/batch. BestIndex
// is -1 when no candidate produced a valid packing.
type OptimizeBatchResponse struct {
	Candidates []CandidateOutcome `json:"candidates"`
	BestIndex  int                `json:"best_index"`
}

// ErrorResponse is the error payload for 4xx/5xx responses. Detail carries the
// structured capacity-exceeded breakdown when applicable.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}
