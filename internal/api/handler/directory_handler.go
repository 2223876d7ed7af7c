package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatseek/attendance-system/internal/core/domain"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// DirectoryHandler exposes the employee directory a privileged actor may
// pivot into.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

type directoryResponse struct {
	Results []domain.Employee `json:"results"`
}

// List handles GET /employees. Privileged-only; standard actors get 403.
func (h *DirectoryHandler) List(c echo.Context) error {
	employees, err := h.directory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, directoryResponse{Results: employees})
}
