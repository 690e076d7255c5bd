package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dustore/pos-admin-api/internal/application/service"
	"github.com/dustore/pos-admin-api/internal/presentation/http/dto/response"
)

// MenuHandler serves the cashier's read-only menu feed. Catalog editing
// lives in the external admin tooling.
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the visible menu entries.
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.menuService.ListVisible(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menus retrieved successfully", menus)
}
