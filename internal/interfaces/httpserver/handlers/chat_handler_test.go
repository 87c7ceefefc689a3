package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/message"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/interfaces/httpserver/handlers"
)

// MockChatService is a mock implementation of chat.Service for testing.
type MockChatService struct {
	AssembleAndRespondFunc func(ctx context.Context, userID string, input chat.AskInput) (*chat.Exchange, error)
	HistoryFunc            func(ctx context.Context, userID string) ([]message.Message, int64, error)
}

func (m *MockChatService) AssembleAndRespond(ctx context.Context, userID string, input chat.AskInput) (*chat.Exchange, error) {
	if m.AssembleAndRespondFunc != nil {
		return m.AssembleAndRespondFunc(ctx, userID, input)
	}
	return nil, nil
}

func (m *MockChatService) History(ctx context.Context, userID string) ([]message.Message, int64, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	return nil, 0, nil
}

func injectPrincipal(subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetPrincipal(c, auth.Principal{ID: subject, Email: subject + "@example.com", Name: "Test User"})
		c.Next()
	}
}

func setupChatTestRouter(handler *handlers.ChatHandler, subject string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(injectPrincipal(subject))
	r.POST("/v1/chat", handler.Ask)
	r.GET("/v1/messages", handler.History)
	return r
}

func TestChatHandler_Ask(t *testing.T) {
	mockService := &MockChatService{
		AssembleAndRespondFunc: func(ctx context.Context, userID string, input chat.AskInput) (*chat.Exchange, error) {
			if userID != "user-1" {
				t.Errorf("Expected user id 'user-1', got %v", userID)
			}
			if input.Message != "tell me about kubernetes" {
				t.Errorf("Unexpected message %q", input.Message)
			}
			return &chat.Exchange{
				UserMessage: &message.Message{
					PublicID:  "msg_user",
					Role:      message.RoleUser,
					Content:   input.Message,
					CreatedAt: time.Now(),
				},
				AssistantMessage: &message.Message{
					PublicID:  "msg_assistant",
					Role:      message.RoleAssistant,
					Content:   "Kubernetes is a container orchestrator.",
					CreatedAt: time.Now(),
				},
				Keywords: []string{"kubernetes"},
			}, nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler, "user-1")

	body, _ := json.Marshal(map[string]any{"message": "tell me about kubernetes"})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	assistant, ok := response["assistant_message"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected assistant_message object, got %T", response["assistant_message"])
	}
	if assistant["id"] != "msg_assistant" {
		t.Errorf("Expected assistant id 'msg_assistant', got %v", assistant["id"])
	}

	keywords, ok := response["keywords"].([]interface{})
	if !ok || len(keywords) != 1 || keywords[0] != "kubernetes" {
		t.Errorf("Unexpected keywords %v", response["keywords"])
	}
}

func TestChatHandler_Ask_PartialWrite(t *testing.T) {
	mockService := &MockChatService{
		AssembleAndRespondFunc: func(ctx context.Context, userID string, input chat.AskInput) (*chat.Exchange, error) {
			return nil, &chat.PartialWriteError{
				UserMessage: &message.Message{
					PublicID:  "msg_user",
					Role:      message.RoleUser,
					Content:   input.Message,
					CreatedAt: time.Now(),
				},
				Cause: errors.New("insert failed"),
			}
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler, "user-1")

	body, _ := json.Marshal(map[string]any{"message": "hello"})
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	userMsg, ok := response["user_message"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected user_message object, got %T", response["user_message"])
	}
	if userMsg["id"] != "msg_user" {
		t.Errorf("Expected stored user message in payload, got %v", userMsg["id"])
	}
}

func TestChatHandler_Ask_InvalidBody(t *testing.T) {
	handler := handlers.NewChatHandler(&MockChatService{}, zerolog.Nop())
	router := setupChatTestRouter(handler, "user-1")

	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestChatHandler_History(t *testing.T) {
	mockService := &MockChatService{
		HistoryFunc: func(ctx context.Context, userID string) ([]message.Message, int64, error) {
			return []message.Message{
				{PublicID: "msg_1", Role: message.RoleUser, Content: "hi"},
				{PublicID: "msg_2", Role: message.RoleAssistant, Content: "hello"},
			}, 2, nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler, "user-1")

	req, _ := http.NewRequest("GET", "/v1/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	data, ok := response["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array, got %T", response["data"])
	}
	if len(data) != 2 {
		t.Errorf("Expected 2 messages, got %d", len(data))
	}
	if response["total"] != float64(2) {
		t.Errorf("Expected total 2, got %v", response["total"])
	}
}

func TestChatHandler_MissingPrincipal(t *testing.T) {
	handler := handlers.NewChatHandler(&MockChatService{}, zerolog.Nop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/messages", handler.History)

	req, _ := http.NewRequest("GET", "/v1/messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}
