package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/geometry-go/internal/application/dto"
	"github.com/hapkiduki/geometry-go/internal/application/port"
)

// mockMenuService is a testify mock for port.MenuService.
type mockMenuService struct {
	mock.Mock
}

func (m *mockMenuService) CheckMenu(ctx context.Context) (port.Menu, error) {
	args := m.Called(ctx)
	return args.Get(0).(port.Menu), args.Error(1)
}

func newMenuRouter(menu port.MenuService) chi.Router {
	r := chi.NewRouter()
	NewMenuHandler(nopLogger{}, menu).Register(r)
	return r
}

func TestMenuHandler_GetMenu(t *testing.T) {
	menu := &mockMenuService{}
	menu.On("CheckMenu", mock.Anything).Return(port.Menu{
		Special: "margherita pizza",
		Dishes:  []string{"margherita pizza", "pasta carbonara", "caesar salad", "tomato soup"},
	}, nil).Once()

	r := newMenuRouter(menu)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.MenuResponse](t, rec)

	assert.True(t, resp.Success)
	assert.Equal(t, "margherita pizza", resp.Data.Special)
	assert.Len(t, resp.Data.Dishes, 4)

	menu.AssertExpectations(t)
}

func TestMenuHandler_GetMenu_BackendError(t *testing.T) {
	menu := &mockMenuService{}
	menu.On("CheckMenu", mock.Anything).Return(port.Menu{}, errors.New("kitchen on fire")).Once()

	r := newMenuRouter(menu)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decode[dto.MenuResponse](t, rec)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MENU_UNAVAILABLE", resp.Error.Code)

	menu.AssertExpectations(t)
}
