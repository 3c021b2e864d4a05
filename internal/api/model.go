package api

import (
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/output"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// CompareRequest is a scenario file in JSON form. Scenarios carry complete
// parameter sets; an empty list projects the baseline alone.
type CompareRequest = domain.Configuration

// ProjectionResponse wraps a single projection.
type ProjectionResponse struct {
	Series output.SeriesView `json:"series"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
