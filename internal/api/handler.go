package api

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/output"
	"github.com/valyala/fasthttp"
)

const (
	pathHealth     = "/healthz"
	pathProjection = "/v1/projections"
	pathCompare    = "/v1/projections/compare"
)

// Handler serves projections over HTTP.
type Handler struct {
	engine *calculation.ProjectionEngine
	parser *config.InputParser
	log    calculation.Logger
	base   context.Context // cancelled when the server shuts down
}

// NewHandler creates a handler projecting with engine. A nil logger logs nothing.
func NewHandler(engine *calculation.ProjectionEngine, log calculation.Logger) *Handler {
	if log == nil {
		log = calculation.NopLogger{}
	}
	return &Handler{engine: engine, parser: config.NewInputParser(), log: log, base: context.Background()}
}

// HandleRequest routes a request by path.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case pathHealth:
		if !ctx.IsGet() && !ctx.IsHead() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})
	case pathProjection:
		h.handleProjection(ctx)
	case pathCompare:
		h.handleCompare(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var params domain.ProjectionParameters
	if err := json.Unmarshal(ctx.PostBody(), &params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	params = withYearDefaults(params)
	if err := config.ValidateParameters(params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	series := h.engine.Project(params)
	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{Series: output.NewSeriesView(series)})
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.parser.ValidateConfiguration(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	results, err := h.engine.RunScenarios(h.base, &req)
	if err != nil {
		h.log.Errorf("compare: %v", err)
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, context.Canceled) {
			status = fasthttp.StatusServiceUnavailable
		}
		writeError(ctx, status, "Projection failed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, output.NewComparisonView(results))
}

// withYearDefaults anchors a request without a current year at the present
// year and ends a request without a last year with the payout phase.
func withYearDefaults(p domain.ProjectionParameters) domain.ProjectionParameters {
	if p.CurrentYear == 0 {
		p.CurrentYear = calculation.CurrentYear()
	}
	if p.LastYear == 0 {
		p.LastYear = p.RetirementEndYear()
	}
	return p
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
