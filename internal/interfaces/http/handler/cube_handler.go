// Package handler contains the HTTP handlers for the geometry API.
// Handlers translate between the HTTP surface (chi routing, render
// encoding) and the domain value objects; they hold no state of their own
// beyond injected collaborators.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jonboulle/clockwork"

	"github.com/hapkiduki/geometry-go/internal/application/dto"
	"github.com/hapkiduki/geometry-go/internal/application/port"
	"github.com/hapkiduki/geometry-go/internal/domain/valueobject"
)

// CubeHandler serves the cube measurement endpoints.
type CubeHandler struct {
	log   port.Logger
	clock clockwork.Clock

	// calc is the cube used by the sum endpoint, where no edge length is
	// involved.
	calc valueobject.Cube
}

// NewCubeHandler creates a new CubeHandler.
//
// Parameters:
//   - log: structured logger
//   - clock: clock driving the deferred computation (real clock in
//     production, fake clock in tests)
//
// Returns:
//   - *CubeHandler: the handler instance
func NewCubeHandler(log port.Logger, clock clockwork.Clock) *CubeHandler {
	return &CubeHandler{
		log:   log,
		clock: clock,
		calc:  valueobject.NewCube(0),
	}
}

// Register attaches the cube endpoints to the given router.
//
// Parameters:
//   - r: the router to register on
func (h *CubeHandler) Register(r chi.Router) {
	r.Get("/cubes/{length}", h.GetCube)
	r.Get("/cubes/{length}/deferred", h.GetDeferred)
	r.Post("/sums", h.PostSum)
}

// GetCube answers with the derived quantities of a cube of the requested
// edge length. The length only has to parse as a float64; beyond parsing no
// validation is applied, so negative lengths flow through with their sign
// intact.
func (h *CubeHandler) GetCube(w http.ResponseWriter, r *http.Request) {
	length, ok := h.parseLength(w, r)
	if !ok {
		return
	}

	cube := valueobject.NewCube(length)
	resp := dto.CubeResponse{
		SideLength:  cube.SideLength(),
		SurfaceArea: cube.SurfaceArea(),
		Volume:      cube.Volume(),
		Dimensions:  cube.Dimensions().String(),
	}

	h.log.WithContext(r.Context()).Debug("cube measured",
		"side_length", resp.SideLength,
		"volume", resp.Volume,
	)

	render.JSON(w, r, dto.NewSuccessResponse(resp))
}

// GetDeferred runs the deferred computation for a cube of the requested
// edge length and answers with its result. The response is delayed by the
// computation's fixed wait.
func (h *CubeHandler) GetDeferred(w http.ResponseWriter, r *http.Request) {
	length, ok := h.parseLength(w, r)
	if !ok {
		return
	}

	cube := valueobject.NewCube(length, valueobject.WithClock(h.clock))

	start := h.clock.Now()
	result, err := cube.DeferredResult(r.Context())
	if err != nil {
		h.log.WithContext(r.Context()).Warn("deferred computation cancelled", "error", err)
		render.Status(r, http.StatusRequestTimeout)
		render.JSON(w, r, dto.NewErrorResponse[dto.DeferredResponse]("CANCELLED", "The computation was cancelled before it completed"))
		return
	}

	render.JSON(w, r, dto.NewSuccessResponse(dto.DeferredResponse{
		Result:    result,
		ElapsedMS: h.clock.Since(start).Milliseconds(),
	}))
}

// PostSum adds the two operands of the request body and answers with the
// sum. The addition goes through the cube's delegating operation.
func (h *CubeHandler) PostSum(w http.ResponseWriter, r *http.Request) {
	var req dto.SumRequest
	if err := render.Bind(r, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.SumResponse]("BAD_REQUEST", "Request body must be a JSON object with numeric fields a and b"))
		return
	}

	render.JSON(w, r, dto.NewSuccessResponse(dto.SumResponse{
		Sum: h.calc.Sum(req.A, req.B),
	}))
}

// parseLength extracts the length URL parameter. On failure it writes the
// 400 response itself and reports false.
func (h *CubeHandler) parseLength(w http.ResponseWriter, r *http.Request) (float64, bool) {
	raw := chi.URLParam(r, "length")
	length, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.CubeResponse]("INVALID_LENGTH", "The length parameter must be numeric"))
		return 0, false
	}
	return length, true
}
