package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadmin/inventory-api/internal/api/middleware"
	"github.com/clinicadmin/inventory-api/internal/core/ports"
)

type AuthHandler struct {
	resolver ports.TokenResolver
}

func NewAuthHandler(resolver ports.TokenResolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

// Authenticate resolves the token given in the body.
//
// @Summary      Resolve a token to a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  false  "Token to resolve; omit for an anonymous lookup"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var token string
	if req.Token != nil {
		token = *req.Token
	}

	user, err := h.resolver.Resolve(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authenticateResponse{User: user})
}

// Me returns the user resolved from the Authorization header.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authenticateResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authenticateResponse{User: middleware.Identity(c)})
}
