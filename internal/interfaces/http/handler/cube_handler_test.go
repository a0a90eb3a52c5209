package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/geometry-go/internal/application/dto"
	"github.com/hapkiduki/geometry-go/internal/application/port"
)

// nopLogger satisfies port.Logger without producing output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})            {}
func (nopLogger) Info(string, ...interface{})             {}
func (nopLogger) Warn(string, ...interface{})             {}
func (nopLogger) Error(string, ...interface{})            {}
func (nopLogger) With(...interface{}) port.Logger         { return nopLogger{} }
func (nopLogger) WithContext(context.Context) port.Logger { return nopLogger{} }

func newCubeRouter(clock clockwork.Clock) chi.Router {
	r := chi.NewRouter()
	NewCubeHandler(nopLogger{}, clock).Register(r)
	return r
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse[T] {
	t.Helper()
	var resp dto.APIResponse[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCubeHandler_GetCube(t *testing.T) {
	r := newCubeRouter(clockwork.NewRealClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cubes/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.CubeResponse](t, rec)

	assert.True(t, resp.Success)
	assert.Equal(t, 3.0, resp.Data.SideLength)
	assert.Equal(t, 54.0, resp.Data.SurfaceArea)
	assert.Equal(t, 27.0, resp.Data.Volume)
	assert.Equal(t, "3x3x3", resp.Data.Dimensions)
}

func TestCubeHandler_GetCube_NegativeLength(t *testing.T) {
	r := newCubeRouter(clockwork.NewRealClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cubes/-2", nil))

	// Negative lengths parse, so they pass straight through to the
	// arithmetic.
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.CubeResponse](t, rec)

	assert.Equal(t, -2.0, resp.Data.SideLength)
	assert.Equal(t, 24.0, resp.Data.SurfaceArea)
	assert.Equal(t, -8.0, resp.Data.Volume)
}

func TestCubeHandler_GetCube_InvalidLength(t *testing.T) {
	r := newCubeRouter(clockwork.NewRealClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cubes/three", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[dto.CubeResponse](t, rec)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_LENGTH", resp.Error.Code)
}

func TestCubeHandler_PostSum(t *testing.T) {
	r := newCubeRouter(clockwork.NewRealClock())

	tests := []struct {
		name string
		body string
		want float64
	}{
		{name: "positive integers", body: `{"a": 2, "b": 3}`, want: 5},
		{name: "negative and fractional", body: `{"a": -1.5, "b": 0.5}`, want: -1},
		{name: "missing operands default to zero", body: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sums", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			resp := decode[dto.SumResponse](t, rec)
			assert.Equal(t, tt.want, resp.Data.Sum)
		})
	}
}

func TestCubeHandler_PostSum_BadBody(t *testing.T) {
	r := newCubeRouter(clockwork.NewRealClock())

	req := httptest.NewRequest(http.MethodPost, "/sums", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[dto.SumResponse](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestCubeHandler_GetDeferred(t *testing.T) {
	fc := clockwork.NewFakeClock()
	r := newCubeRouter(fc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cubes/2/deferred", nil)

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	fc.BlockUntil(1)
	fc.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred endpoint did not answer after the clock advanced")
	}

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.DeferredResponse](t, rec)

	assert.True(t, resp.Success)
	assert.Equal(t, 6.0, resp.Data.Result)
	assert.Equal(t, int64(1000), resp.Data.ElapsedMS)
}

func TestCubeHandler_GetDeferred_ClientCancellation(t *testing.T) {
	fc := clockwork.NewFakeClock()
	r := newCubeRouter(fc)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/cubes/2/deferred", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	fc.BlockUntil(1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred endpoint did not answer after cancellation")
	}

	require.Equal(t, http.StatusRequestTimeout, rec.Code)
	resp := decode[dto.DeferredResponse](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CANCELLED", resp.Error.Code)
}
