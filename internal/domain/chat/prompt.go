package chat

import (
	"strings"

	"parley-server/chat-api/internal/domain/file"
)

const basePersona = "You are a helpful AI assistant that provides detailed, accurate responses. " +
	"Format code blocks with proper syntax highlighting using ```language code```. " +
	"When analyzing files, provide insights about the content and structure."

const (
	fileContextHeader = " Here is additional context from files the user has uploaded:\n\n"

	// fileContentLimit caps how many characters of raw content each file
	// contributes.
	fileContentLimit = 500

	truncationMarker = "... (truncated)"
)

// buildSystemPrompt composes the persona, the interest hint derived from
// message history, and context blocks for the referenced files.
func buildSystemPrompt(keywords []string, files []file.UploadedFile) string {
	var b strings.Builder
	b.WriteString(basePersona)

	if len(keywords) > 0 {
		b.WriteString(" The user seems interested in: ")
		b.WriteString(strings.Join(keywords, ", "))
		b.WriteString(".")
	}

	if len(files) > 0 {
		b.WriteString(fileContextHeader)
		for _, f := range files {
			content := f.RawText
			if runes := []rune(content); len(runes) > fileContentLimit {
				content = string(runes[:fileContentLimit]) + truncationMarker
			}
			b.WriteString("File: ")
			b.WriteString(f.Name)
			b.WriteString("\nContent: ")
			b.WriteString(content)
			b.WriteString("\nAnalysis: ")
			b.WriteString(f.Summary)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
