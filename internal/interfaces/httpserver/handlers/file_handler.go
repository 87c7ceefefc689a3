package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/infrastructure/metrics"
	"parley-server/chat-api/internal/infrastructure/observability"
	"parley-server/chat-api/internal/interfaces/httpserver/responses"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// FileHandler exposes HTTP entrypoints for file uploads and analysis.
type FileHandler struct {
	service        file.Service
	maxUploadBytes int64
	log            zerolog.Logger
}

// NewFileHandler constructs the handler.
func NewFileHandler(service file.Service, maxUploadBytes int64, log zerolog.Logger) *FileHandler {
	return &FileHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log.With().Str("handler", "file").Logger(),
	}
}

// Upload handles POST /v1/files
// @Summary Upload a file for analysis
// @Description Accepts a multipart upload, extracts text when possible, and generates a summary.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} responses.FilePayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 413 {object} responses.ErrorResponse
// @Router /v1/files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "3a6e1d92-7c40-4b5f-8e21-d94f0b7c3a58")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		metrics.RecordUpload("multipart", "rejected")
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "multipart form must contain a \"file\" part", "b8d3f621-5e09-4a7c-bf34-16c2e9d0a873")
		return
	}

	if header.Size > h.maxUploadBytes {
		metrics.RecordUpload("multipart", "rejected")
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{
			Error:   fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes),
			Message: fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes),
		})
		return
	}

	src, err := header.Open()
	if err != nil {
		metrics.RecordUpload("multipart", "error")
		responses.HandleNewError(c, platformerrors.ErrorTypeInternal, "failed to read uploaded file", "f0a9c4e7-2d16-48b3-a5f8-7e1d6c0b9254")
		return
	}
	defer src.Close()

	// The size header is client-supplied; the reader is the second guard.
	content, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes+1))
	if err != nil {
		metrics.RecordUpload("multipart", "error")
		responses.HandleNewError(c, platformerrors.ErrorTypeInternal, "failed to read uploaded file", "9c57b2a0-4f8e-4d61-b3c9-0a2e8f5d1746")
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		metrics.RecordUpload("multipart", "rejected")
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{
			Error:   fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes),
			Message: fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUploadBytes),
		})
		return
	}

	contentType := header.Header.Get("Content-Type")
	ctx, span := observability.StartUploadSpan(c.Request.Context(), header.Filename, contentType, int64(len(content)))
	defer span.End()

	stored, err := h.service.Ingest(ctx, principal.ID, file.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		Content:     content,
	})
	if err != nil {
		metrics.RecordUpload("multipart", "error")
		observability.RecordError(span, err)
		responses.HandleError(c, err, "file upload failed")
		return
	}

	metrics.RecordUpload("multipart", "ok")
	c.JSON(http.StatusCreated, responses.FileFromDomain(stored))
}

// List handles GET /v1/files
// @Summary List the caller's uploaded files
// @Tags Files
// @Produce json
// @Success 200 {object} responses.FileListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /v1/files [get]
func (h *FileHandler) List(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "6b1f8c35-9d72-4e04-a8b6-3f5c0d9e2a17")
		return
	}

	files, err := h.service.ListByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		responses.HandleError(c, err, "failed to list files")
		return
	}

	c.JSON(http.StatusOK, responses.FileListFromDomain(files))
}

// Get handles GET /v1/files/:file_id
// @Summary Get an uploaded file
// @Tags Files
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} responses.FilePayload
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/files/{file_id} [get]
func (h *FileHandler) Get(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "d4e72a09-1b68-4f35-9c0d-8a3f6e5b2c91")
		return
	}

	f, err := h.service.GetOwned(c.Request.Context(), principal.ID, c.Param("file_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to fetch file")
		return
	}

	c.JSON(http.StatusOK, responses.FileFromDomain(f))
}

// Analyze handles POST /v1/files/:file_id/analyze
// @Summary Regenerate the summary for an uploaded file
// @Tags Files
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} responses.FilePayload
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/files/{file_id}/analyze [post]
func (h *FileHandler) Analyze(c *gin.Context) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing authenticated principal", "2f9d6b83-0e47-41c2-85a1-b7c3d0f9e624")
		return
	}

	fileID := c.Param("file_id")
	ctx, span := observability.StartAnalysisSpan(c.Request.Context(), fileID)
	defer span.End()

	f, err := h.service.Analyze(ctx, principal.ID, fileID)
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "file analysis failed")
		return
	}

	c.JSON(http.StatusOK, responses.FileFromDomain(f))
}
