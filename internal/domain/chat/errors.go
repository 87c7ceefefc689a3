package chat

import (
	"fmt"

	"parley-server/chat-api/internal/domain/message"
)

// PartialWriteError reports that the user message was stored but the
// assistant reply was not. Callers must surface the stored message so the
// client can reconcile history.
type PartialWriteError struct {
	UserMessage *message.Message
	Cause       error
}

// Error implements the error interface.
func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("assistant message write failed after user message %s was stored: %v",
		e.UserMessage.PublicID, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *PartialWriteError) Unwrap() error {
	return e.Cause
}
