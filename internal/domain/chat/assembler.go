package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/domain/keyword"
	"parley-server/chat-api/internal/domain/llm"
	"parley-server/chat-api/internal/domain/message"
	"parley-server/chat-api/internal/utils/functional"
	"parley-server/chat-api/internal/utils/platformerrors"
)

const (
	fallbackAttachmentContent = "I've attached a file for analysis."
	fallbackAttachmentPrompt  = "I've attached a file for analysis. Can you tell me about it?"
)

// AskInput carries one user turn.
type AskInput struct {
	Message       string
	FileIDs       []string
	HasAttachment bool
}

// Exchange is the persisted result of one turn.
type Exchange struct {
	UserMessage      *message.Message
	AssistantMessage *message.Message
	Keywords         []string
}

// Assembler builds the prompt context for a turn, calls the generator, and
// persists the resulting message pair.
type Assembler struct {
	messages  message.Repository
	files     file.Repository
	generator llm.Generator
	log       zerolog.Logger
}

// NewAssembler wires dependencies.
func NewAssembler(messages message.Repository, files file.Repository, generator llm.Generator, log zerolog.Logger) *Assembler {
	return &Assembler{
		messages:  messages,
		files:     files,
		generator: generator,
		log:       log.With().Str("component", "chat-assembler").Logger(),
	}
}

// AssembleAndRespond runs one chat turn for the given user. Nothing is
// persisted unless generation succeeds. If the assistant write fails after
// the user message was stored, the returned error is a PartialWriteError
// carrying the stored user message.
func (a *Assembler) AssembleAndRespond(ctx context.Context, userID string, input AskInput) (*Exchange, error) {
	trimmed := strings.TrimSpace(input.Message)
	if trimmed == "" && !input.HasAttachment {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message must not be empty", nil, "")
	}

	storedContent := input.Message
	prompt := input.Message
	if trimmed == "" {
		storedContent = fallbackAttachmentContent
		prompt = fallbackAttachmentPrompt
	}

	history, err := a.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load message history")
	}

	userTexts := functional.Map(
		functional.Filter(history, func(m message.Message) bool { return m.Role == message.RoleUser }),
		func(m message.Message) string { return m.Content },
	)
	keywords := keyword.Extract(userTexts)

	contextFiles, err := a.resolveFiles(ctx, userID, input.FileIDs)
	if err != nil {
		return nil, err
	}

	systemPrompt := buildSystemPrompt(keywords, contextFiles)

	reply, err := a.generator.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"completion generation failed", err, "")
	}

	userMsg, err := message.New(userID, message.RoleUser, storedContent, input.HasAttachment)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"build user message", err, "")
	}
	storedUser, err := a.messages.Create(ctx, userMsg)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "store user message")
	}

	assistantMsg, err := message.New(userID, message.RoleAssistant, reply, false)
	if err != nil {
		return nil, &PartialWriteError{UserMessage: storedUser, Cause: err}
	}
	storedAssistant, err := a.messages.Create(ctx, assistantMsg)
	if err != nil {
		return nil, &PartialWriteError{UserMessage: storedUser, Cause: err}
	}

	return &Exchange{
		UserMessage:      storedUser,
		AssistantMessage: storedAssistant,
		Keywords:         keywords,
	}, nil
}

// History returns the caller's messages in chronological order together with
// the stored total.
func (a *Assembler) History(ctx context.Context, userID string) ([]message.Message, int64, error) {
	history, err := a.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load message history")
	}
	total, err := a.messages.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count message history")
	}
	return history, total, nil
}

// resolveFiles fetches the referenced files, scoped to the owner. Unknown
// file IDs are skipped rather than failing the turn.
func (a *Assembler) resolveFiles(ctx context.Context, userID string, fileIDs []string) ([]file.UploadedFile, error) {
	var resolved []file.UploadedFile
	for _, fileID := range fileIDs {
		f, err := a.files.FindOwnedByPublicID(ctx, userID, fileID)
		if err != nil {
			if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
				a.log.Warn().Str("file_id", fileID).Msg("skipping unknown file reference")
				continue
			}
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch context file")
		}
		resolved = append(resolved, *f)
	}
	return resolved, nil
}
