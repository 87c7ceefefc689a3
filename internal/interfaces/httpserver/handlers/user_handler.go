package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/user"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/interfaces/httpserver/requests"
	"parley-server/chat-api/internal/interfaces/httpserver/responses"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// UserHandler exposes HTTP entrypoints for the caller's account.
type UserHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(service user.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("handler", "user").Logger(),
	}
}

// Me handles GET /v1/users/me
// @Summary Get the caller's account
// @Tags Users
// @Produce json
// @Success 200 {object} responses.UserPayload
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "a1c5e830-6d92-47f4-b0e8-2c9d5f7a3b16")
		return
	}

	u, err := h.service.Get(c.Request.Context(), principal.ID)
	if err != nil {
		responses.HandleError(c, err, "failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, responses.UserFromDomain(u))
}

// UpdateMe handles PUT /v1/users/me
// @Summary Update the caller's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body requests.UpdateProfileRequest true "Profile update"
// @Success 200 {object} responses.UserPayload
// @Failure 400 {object} responses.ErrorResponse
// @Router /v1/users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req requests.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid profile update request", "5e8b2d47-9f03-4a61-8c5d-1b6e0f4a7c29")
		return
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "8f4a6c19-3e75-4b02-9d8a-c5b1e7d0f263")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), principal.ID, req.Name, req.AvatarURL)
	if err != nil {
		responses.HandleError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, responses.UserFromDomain(u))
}
