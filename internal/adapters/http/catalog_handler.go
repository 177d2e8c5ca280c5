package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/core/internal/application/services"
	"github.com/shopstack/core/internal/infrastructure/logger"
)

// CatalogHandler handles product catalog requests
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts returns the full catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.ListProducts(c.Request().Context()))
}

// CreateProduct handles the multipart product form: name, description and
// exactly one image file, all required.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	name := c.FormValue("name")
	description := c.FormValue("description")
	file, err := c.FormFile("image")

	if name == "" || description == "" || err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgMissingFields)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("Opening uploaded image failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, MsgInternalError)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error("Reading uploaded image failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, MsgInternalError)
	}

	if _, err := h.catalog.AddProduct(c.Request().Context(), name, description, data, file.Filename); err != nil {
		h.logger.Error("Add product failed", "error", err, "name", name)
		return echo.NewHTTPError(http.StatusInternalServerError, MsgInternalError)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: MsgProductAdded})
}
