package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/domain/message"
	"parley-server/chat-api/internal/utils/platformerrors"
)

type mockMessageRepo struct {
	createFunc func(ctx context.Context, msg *message.Message) (*message.Message, error)
	listFunc   func(ctx context.Context, userID string) ([]message.Message, error)
	created    []*message.Message
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *message.Message) (*message.Message, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	m.created = append(m.created, msg)
	return msg, nil
}

func (m *mockMessageRepo) ListByUser(ctx context.Context, userID string) ([]message.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMessageRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return int64(len(m.created)), nil
}

type mockFileRepo struct {
	findFunc func(ctx context.Context, userID, publicID string) (*file.UploadedFile, error)
}

func (m *mockFileRepo) Create(ctx context.Context, f *file.UploadedFile) (*file.UploadedFile, error) {
	return f, nil
}

func (m *mockFileRepo) ListByUser(ctx context.Context, userID string) ([]file.UploadedFile, error) {
	return nil, nil
}

func (m *mockFileRepo) FindOwnedByPublicID(ctx context.Context, userID, publicID string) (*file.UploadedFile, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, userID, publicID)
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
		"file not found", nil, "")
}

func (m *mockFileRepo) UpdateSummary(ctx context.Context, id uint, summary string) error {
	return nil
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	lastSystemPrompt string
	lastUserPrompt   string
}

func (m *mockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.lastSystemPrompt = systemPrompt
	m.lastUserPrompt = userPrompt
	if m.generateFunc != nil {
		return m.generateFunc(ctx, systemPrompt, userPrompt)
	}
	return "generated reply", nil
}

func newAssembler(messages *mockMessageRepo, files *mockFileRepo, gen *mockGenerator) *chat.Assembler {
	return chat.NewAssembler(messages, files, gen, zerolog.Nop())
}

func TestAssembleAndRespond_PersistsMessagePair(t *testing.T) {
	messages := &mockMessageRepo{}
	gen := &mockGenerator{}
	assembler := newAssembler(messages, &mockFileRepo{}, gen)

	exchange, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{
		Message: "tell me about kubernetes",
	})
	if err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	if exchange.UserMessage.Role != message.RoleUser {
		t.Errorf("user message role = %v, want %v", exchange.UserMessage.Role, message.RoleUser)
	}
	if exchange.UserMessage.Content != "tell me about kubernetes" {
		t.Errorf("user message content = %q", exchange.UserMessage.Content)
	}
	if exchange.AssistantMessage.Role != message.RoleAssistant {
		t.Errorf("assistant message role = %v, want %v", exchange.AssistantMessage.Role, message.RoleAssistant)
	}
	if exchange.AssistantMessage.Content != "generated reply" {
		t.Errorf("assistant message content = %q", exchange.AssistantMessage.Content)
	}
	if len(messages.created) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(messages.created))
	}
	if messages.created[0].Role != message.RoleUser || messages.created[1].Role != message.RoleAssistant {
		t.Errorf("messages persisted out of order: %v then %v", messages.created[0].Role, messages.created[1].Role)
	}
}

func TestAssembleAndRespond_EmptyMessageWithoutAttachment(t *testing.T) {
	assembler := newAssembler(&mockMessageRepo{}, &mockFileRepo{}, &mockGenerator{})

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{Message: "   "})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("AssembleAndRespond() error = %v, want validation error", err)
	}
}

func TestAssembleAndRespond_EmptyMessageWithAttachment(t *testing.T) {
	messages := &mockMessageRepo{}
	gen := &mockGenerator{}
	assembler := newAssembler(messages, &mockFileRepo{}, gen)

	exchange, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{
		Message:       "",
		HasAttachment: true,
	})
	if err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	if exchange.UserMessage.Content != "I've attached a file for analysis." {
		t.Errorf("stored content = %q", exchange.UserMessage.Content)
	}
	if !exchange.UserMessage.HasAttachment {
		t.Error("stored user message should carry the attachment flag")
	}
	if gen.lastUserPrompt != "I've attached a file for analysis. Can you tell me about it?" {
		t.Errorf("generator prompt = %q", gen.lastUserPrompt)
	}
}

func TestAssembleAndRespond_GenerationFailurePersistsNothing(t *testing.T) {
	messages := &mockMessageRepo{}
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
			return "", errors.New("backend unavailable")
		},
	}
	assembler := newAssembler(messages, &mockFileRepo{}, gen)

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{Message: "hello there"})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("AssembleAndRespond() error = %v, want external error", err)
	}
	if len(messages.created) != 0 {
		t.Errorf("persisted %d messages after generation failure, want 0", len(messages.created))
	}
}

func TestAssembleAndRespond_AssistantWriteFailure(t *testing.T) {
	var storedUser *message.Message
	messages := &mockMessageRepo{}
	messages.createFunc = func(ctx context.Context, msg *message.Message) (*message.Message, error) {
		if msg.Role == message.RoleAssistant {
			return nil, errors.New("connection reset")
		}
		storedUser = msg
		return msg, nil
	}
	assembler := newAssembler(messages, &mockFileRepo{}, &mockGenerator{})

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{Message: "hello there"})

	var partial *chat.PartialWriteError
	if !errors.As(err, &partial) {
		t.Fatalf("AssembleAndRespond() error = %v, want PartialWriteError", err)
	}
	if partial.UserMessage == nil || partial.UserMessage != storedUser {
		t.Error("PartialWriteError should carry the stored user message")
	}
}

func TestAssembleAndRespond_KeywordsInSystemPrompt(t *testing.T) {
	history := []message.Message{
		{Role: message.RoleUser, Content: "postgres postgres indexing"},
		{Role: message.RoleAssistant, Content: "ignore ignore ignore assistant words"},
	}
	messages := &mockMessageRepo{
		listFunc: func(ctx context.Context, userID string) ([]message.Message, error) {
			return history, nil
		},
	}
	gen := &mockGenerator{}
	assembler := newAssembler(messages, &mockFileRepo{}, gen)

	if _, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{Message: "more please"}); err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	if !strings.Contains(gen.lastSystemPrompt, "The user seems interested in: postgres, indexing.") {
		t.Errorf("system prompt missing interest hint: %q", gen.lastSystemPrompt)
	}
	if strings.Contains(gen.lastSystemPrompt, "ignore") {
		t.Errorf("assistant history leaked into keywords: %q", gen.lastSystemPrompt)
	}
}

func TestAssembleAndRespond_FileContextTruncation(t *testing.T) {
	longContent := strings.Repeat("x", 600)
	files := &mockFileRepo{
		findFunc: func(ctx context.Context, userID, publicID string) (*file.UploadedFile, error) {
			return &file.UploadedFile{
				PublicID: publicID,
				UserID:   userID,
				Name:     "notes.txt",
				RawText:  longContent,
				Summary:  "A very long note about testing.",
			}, nil
		},
	}
	gen := &mockGenerator{}
	assembler := newAssembler(&mockMessageRepo{}, files, gen)

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{
		Message: "what is in my file",
		FileIDs: []string{"file_abc"},
	})
	if err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	if !strings.Contains(gen.lastSystemPrompt, "File: notes.txt") {
		t.Errorf("system prompt missing file block: %q", gen.lastSystemPrompt)
	}
	if got := strings.Count(gen.lastSystemPrompt, "... (truncated)"); got != 1 {
		t.Errorf("truncation marker appears %d times, want 1", got)
	}
	if strings.Contains(gen.lastSystemPrompt, longContent) {
		t.Error("file content was not truncated")
	}
	if !strings.Contains(gen.lastSystemPrompt, "Analysis: A very long note about testing.") {
		t.Errorf("summary should be included untruncated: %q", gen.lastSystemPrompt)
	}
}

func TestAssembleAndRespond_FileContextLimitCountsRunes(t *testing.T) {
	// 200 characters but 600 bytes, under the character cap.
	content := strings.Repeat("漢", 200)
	files := &mockFileRepo{
		findFunc: func(ctx context.Context, userID, publicID string) (*file.UploadedFile, error) {
			return &file.UploadedFile{
				PublicID: publicID,
				UserID:   userID,
				Name:     "kanji.txt",
				RawText:  content,
				Summary:  "A note in Japanese.",
			}, nil
		},
	}
	gen := &mockGenerator{}
	assembler := newAssembler(&mockMessageRepo{}, files, gen)

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{
		Message: "what is in my file",
		FileIDs: []string{"file_abc"},
	})
	if err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	if strings.Contains(gen.lastSystemPrompt, "... (truncated)") {
		t.Error("content under the character cap should not be truncated")
	}
	if !strings.Contains(gen.lastSystemPrompt, content) {
		t.Error("system prompt should carry the full file content")
	}
	if !utf8.ValidString(gen.lastSystemPrompt) {
		t.Error("system prompt contains invalid UTF-8")
	}
}

func TestHistory_ReturnsMessagesWithTotal(t *testing.T) {
	messages := &mockMessageRepo{}
	assembler := newAssembler(messages, &mockFileRepo{}, &mockGenerator{})

	if _, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{Message: "hello there"}); err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}

	messages.listFunc = func(ctx context.Context, userID string) ([]message.Message, error) {
		result := make([]message.Message, 0, len(messages.created))
		for _, m := range messages.created {
			result = append(result, *m)
		}
		return result, nil
	}

	history, total, err := assembler.History(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Errorf("History() returned %d messages, want 2", len(history))
	}
	if total != 2 {
		t.Errorf("History() total = %d, want 2", total)
	}
}

func TestAssembleAndRespond_UnknownFileSkipped(t *testing.T) {
	gen := &mockGenerator{}
	assembler := newAssembler(&mockMessageRepo{}, &mockFileRepo{}, gen)

	_, err := assembler.AssembleAndRespond(context.Background(), "user-1", chat.AskInput{
		Message: "what is in my file",
		FileIDs: []string{"file_missing"},
	})
	if err != nil {
		t.Fatalf("AssembleAndRespond() error = %v", err)
	}
	if strings.Contains(gen.lastSystemPrompt, "additional context from files") {
		t.Errorf("system prompt should not contain a file section: %q", gen.lastSystemPrompt)
	}
}
