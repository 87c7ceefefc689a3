package file

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/llm"
	"parley-server/chat-api/internal/utils/platformerrors"
)

const (
	// analysisSourceLimit caps how many characters of file content are sent
	// for analysis.
	analysisSourceLimit = 8000

	analysisSystemPrompt = "You are an AI assistant that analyzes files. Provide a brief summary of what this file contains."

	fallbackSummary = "Could not generate analysis for this file."
)

// Service exposes the file domain operations consumed by the HTTP layer.
type Service interface {
	Ingest(ctx context.Context, userID string, upload Upload) (*UploadedFile, error)
	ListByOwner(ctx context.Context, userID string) ([]UploadedFile, error)
	GetOwned(ctx context.Context, userID, publicID string) (*UploadedFile, error)
	Analyze(ctx context.Context, userID, publicID string) (*UploadedFile, error)
}

var _ Service = (*ServiceImpl)(nil)

// Upload carries the raw bytes and metadata of an incoming file.
type Upload struct {
	Name        string
	ContentType string
	SizeBytes   int64
	Content     []byte
}

// ServiceImpl ingests and analyzes uploaded files.
type ServiceImpl struct {
	files     Repository
	generator llm.Generator
	log       zerolog.Logger
}

// NewService wires dependencies.
func NewService(files Repository, generator llm.Generator, log zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		files:     files,
		generator: generator,
		log:       log.With().Str("component", "file-service").Logger(),
	}
}

// Ingest stores an upload under the given owner. Text-like content is kept
// verbatim; binary content is replaced with a placeholder. A summary is
// generated immediately but its failure never fails the upload.
func (s *ServiceImpl) Ingest(ctx context.Context, userID string, upload Upload) (*UploadedFile, error) {
	if len(upload.Content) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"uploaded file is empty", nil, "")
	}

	textLike := IsTextLike(upload.ContentType, upload.Name)
	meta := Metadata{
		OriginalName: upload.Name,
		ContentType:  upload.ContentType,
		SizeBytes:    upload.SizeBytes,
		TextLike:     textLike,
	}

	f, err := NewUploadedFile(userID, upload.Name, meta)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			err.Error(), err, "")
	}

	if textLike {
		f.RawText = string(upload.Content)
	} else {
		f.RawText = fmt.Sprintf("[Binary file: %s, type: %s, size: %d bytes]",
			upload.Name, upload.ContentType, upload.SizeBytes)
	}

	f.Summary = s.summarize(ctx, f)

	stored, err := s.files.Create(ctx, f)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "store uploaded file")
	}
	return stored, nil
}

// ListByOwner returns all files the user has uploaded, newest first.
func (s *ServiceImpl) ListByOwner(ctx context.Context, userID string) ([]UploadedFile, error) {
	files, err := s.files.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list uploaded files")
	}
	return files, nil
}

// GetOwned fetches a single file, scoped to its owner.
func (s *ServiceImpl) GetOwned(ctx context.Context, userID, publicID string) (*UploadedFile, error) {
	f, err := s.files.FindOwnedByPublicID(ctx, userID, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch uploaded file")
	}
	return f, nil
}

// Analyze regenerates the summary for a stored file and persists it.
func (s *ServiceImpl) Analyze(ctx context.Context, userID, publicID string) (*UploadedFile, error) {
	f, err := s.files.FindOwnedByPublicID(ctx, userID, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch uploaded file")
	}

	f.Summary = s.summarize(ctx, f)
	if err := s.files.UpdateSummary(ctx, f.ID, f.Summary); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "update file summary")
	}
	return f, nil
}

// summarize asks the generator for a brief file analysis. Binary files get a
// static description; generation failures fall back to a static summary.
func (s *ServiceImpl) summarize(ctx context.Context, f *UploadedFile) string {
	if !f.Metadata.TextLike {
		return fmt.Sprintf("This appears to be a binary file of type %s.", f.Metadata.ContentType)
	}

	source := f.RawText
	if runes := []rune(source); len(runes) > analysisSourceLimit {
		source = string(runes[:analysisSourceLimit]) + "... (content truncated)"
	}

	prompt := fmt.Sprintf("I've uploaded a file named %q of type %q. Here's the content:\n\n%s\n\n"+
		"Please provide a brief summary of what this file contains. Keep it concise.",
		f.Name, f.Metadata.ContentType, source)

	summary, err := s.generator.Generate(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		s.log.Warn().Err(err).Str("file_id", f.PublicID).Msg("file analysis generation failed")
		return fallbackSummary
	}
	return summary
}
