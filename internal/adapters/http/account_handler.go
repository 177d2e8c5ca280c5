package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/core/internal/application/services"
	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/logger"
)

// AccountHandler handles registration and login requests
type AccountHandler struct {
	accounts *services.AccountService
	logger   *logger.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *services.AccountService, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register handles user registration
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgMissingFields)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgMissingFields)
	}

	err := h.accounts.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, entities.ErrUserExists):
		return echo.NewHTTPError(http.StatusBadRequest, MsgUserExists)
	case err != nil:
		h.logger.Error("Register failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, MsgInternalError)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: MsgRegistered})
}

// Login handles user login. A malformed or incomplete payload gets the
// same generic answer as a failed credential match.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidLogin)
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidLogin)
	}

	if err := h.accounts.Login(c.Request().Context(), req.Username, req.Password); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidLogin)
	}

	return c.JSON(http.StatusOK, LoginResponse{Message: MsgLoggedIn, Success: true})
}
