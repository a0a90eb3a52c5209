package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/geometry-go/internal/application/dto"
	"github.com/hapkiduki/geometry-go/internal/application/port"
)

// MenuHandler serves the kitchen menu endpoint.
type MenuHandler struct {
	log  port.Logger
	menu port.MenuService
}

// NewMenuHandler creates a new MenuHandler.
//
// Parameters:
//   - log: structured logger
//   - menu: the kitchen backend
//
// Returns:
//   - *MenuHandler: the handler instance
func NewMenuHandler(log port.Logger, menu port.MenuService) *MenuHandler {
	return &MenuHandler{
		log:  log,
		menu: menu,
	}
}

// Register attaches the menu endpoint to the given router.
//
// Parameters:
//   - r: the router to register on
func (h *MenuHandler) Register(r chi.Router) {
	r.Get("/menu", h.GetMenu)
}

// GetMenu answers with the chef's current menu.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menu.CheckMenu(r.Context())
	if err != nil {
		h.log.WithContext(r.Context()).Error("menu lookup failed", "error", err)
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, dto.NewErrorResponse[dto.MenuResponse]("MENU_UNAVAILABLE", "The kitchen did not answer"))
		return
	}

	render.JSON(w, r, dto.NewSuccessResponse(dto.MenuResponse{
		Special: menu.Special,
		Dishes:  menu.Dishes,
	}))
}
