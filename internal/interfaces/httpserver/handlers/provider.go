package handlers

import (
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/domain/user"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat *ChatHandler
	File *FileHandler
	User *UserHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	chatService chat.Service,
	fileService file.Service,
	userService user.Service,
	maxUploadBytes int64,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat: NewChatHandler(chatService, log),
		File: NewFileHandler(fileService, maxUploadBytes, log),
		User: NewUserHandler(userService, log),
	}
}
