package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/infrastructure/observability"
	"parley-server/chat-api/internal/interfaces/httpserver/middlewares"
	"parley-server/chat-api/internal/interfaces/httpserver/requests"
	"parley-server/chat-api/internal/interfaces/httpserver/responses"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// ChatHandler exposes HTTP entrypoints for chat turns and message history.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Ask handles POST /v1/chat
// @Summary Send a message to the assistant
// @Description Runs one chat turn: assembles context from history and attached files, generates a reply, and persists the message pair.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.ChatRequest true "Chat turn"
// @Success 200 {object} responses.ChatResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.PartialChatResponse
// @Router /v1/chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid chat request", "c1f5f9be-6f0d-4f5c-9a3e-2f7b1f4d0a01")
		return
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "e4a0c2d7-8b31-4d6a-9f02-5c8e7a1b3d42")
		return
	}

	ctx, span := observability.StartTurnSpan(c.Request.Context(), principal.ID, len(req.FileIDs), req.HasAttachment)
	defer span.End()

	exchange, err := h.service.AssembleAndRespond(ctx, principal.ID, chat.AskInput{
		Message:       req.Message,
		FileIDs:       req.FileIDs,
		HasAttachment: req.HasAttachment,
	})
	if err != nil {
		observability.RecordError(span, err)

		var partial *chat.PartialWriteError
		if errors.As(err, &partial) {
			h.log.Error().Err(partial.Cause).Str("user_id", principal.ID).
				Msg("assistant message write failed after user message was stored")
			c.JSON(http.StatusBadGateway, responses.PartialChatResponse{
				Error:       "assistant reply could not be stored",
				UserMessage: responses.MessageFromDomain(partial.UserMessage),
				RequestID:   middlewares.RequestIDFromContext(c),
			})
			return
		}

		responses.HandleError(c, err, "chat turn failed")
		return
	}

	c.JSON(http.StatusOK, responses.ChatFromDomain(exchange))
}

// History handles GET /v1/messages
// @Summary List the caller's message history
// @Tags Chat
// @Produce json
// @Success 200 {object} responses.MessageListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/messages [get]
func (h *ChatHandler) History(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "7d2b9e44-0a5f-4c83-b1e6-9f3c2d8a6b15")
		return
	}

	history, total, err := h.service.History(c.Request.Context(), principal.ID)
	if err != nil {
		responses.HandleError(c, err, "failed to load message history")
		return
	}

	c.JSON(http.StatusOK, responses.MessageListFromDomain(history, total))
}
