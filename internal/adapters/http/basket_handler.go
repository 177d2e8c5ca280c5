package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/core/internal/application/services"
	"github.com/shopstack/core/internal/infrastructure/logger"
)

// BasketHandler handles shopping basket requests
type BasketHandler struct {
	basket *services.BasketService
	logger *logger.Logger
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(basket *services.BasketService, logger *logger.Logger) *BasketHandler {
	return &BasketHandler{
		basket: basket,
		logger: logger,
	}
}

// ListEntries returns the basket collection
func (h *BasketHandler) ListEntries(c echo.Context) error {
	return c.JSON(http.StatusOK, h.basket.ListEntries(c.Request().Context()))
}

// DeleteEntry removes every entry matching the path id. Deleting an id
// that is not present still answers with the success message.
func (h *BasketHandler) DeleteEntry(c echo.Context) error {
	id := c.Param("id")

	if err := h.basket.RemoveEntry(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete basket entry failed", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, MsgInternalError)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: MsgBasketRemoved})
}
