package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/document/usecase"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for the document store.
type HTTPEndpoint struct {
	uc uc
}

// DocumentList returns documents, newest first.
// @Summary List documents
// @Tags Documents
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} DocumentListResponse "Documents"
// @Failure 401 {object} DocumentListResponse "Authentication required"
// @Failure 500 {object} DocumentListResponse "Internal server error"
// @Security BearerAuth
// @Router /api/documents [get]
func (h *HTTPEndpoint) DocumentList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentList(r.Context(), usecase.DocumentListInput{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return DocumentListResponse{
		Success: true,
		Documents: lo.Map(resp.Documents, func(d entity.Document, _ int) DocumentModel {
			return toDocumentModel(d, "")
		}),
		Meta: map[string]any{
			"page":  resp.Page,
			"size":  resp.Size,
			"total": resp.Total,
		},
	}, nil
}

// DocumentCreate stores a new document.
// @Summary Create document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body DocumentCreateRequest true "Document payload"
// @Success 201 {object} DocumentCreateResponse "Created"
// @Failure 400 {object} DocumentCreateResponse "Validation error"
// @Failure 401 {object} DocumentCreateResponse "Authentication required"
// @Security BearerAuth
// @Router /api/documents [post]
func (h *HTTPEndpoint) DocumentCreate(r *router.Request) (any, error) {
	var req DocumentCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentCreate(r.Context(), usecase.DocumentCreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return DocumentCreateResponse{
		Success:  true,
		Message:  "Document uploaded successfully",
		Document: toDocumentModel(resp.Document, ""),
	}, nil
}

// DocumentDetail returns a single document.
// @Summary Get document
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} DocumentDetailResponse "Document"
// @Failure 401 {object} DocumentDetailResponse "Authentication required"
// @Failure 404 {object} DocumentDetailResponse "Document not found"
// @Security BearerAuth
// @Router /api/documents/{id} [get]
func (h *HTTPEndpoint) DocumentDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.DocumentDetail(r.Context(), usecase.DocumentDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return DocumentDetailResponse{
		Success:  true,
		Document: toDocumentModel(resp.Document, resp.AttachmentURL),
	}, nil
}

// DocumentAttach uploads an attachment for a document.
// @Summary Attach file to document
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Document ID"
// @Param attachment formData file true "Attachment file"
// @Success 200 {object} DocumentAttachResponse "Attached"
// @Failure 400 {object} DocumentAttachResponse "Invalid attachment"
// @Failure 401 {object} DocumentAttachResponse "Authentication required"
// @Failure 404 {object} DocumentAttachResponse "Document not found"
// @Security BearerAuth
// @Router /api/documents/{id}/attachment [put]
func (h *HTTPEndpoint) DocumentAttach(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("attachment")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.DocumentAttach(ctx, usecase.DocumentAttachInput{
		ID:          id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return DocumentAttachResponse{
		Success:       true,
		Message:       "Attachment uploaded successfully",
		AttachmentKey: resp.AttachmentKey,
	}, nil
}

func toDocumentModel(d entity.Document, attachmentURL string) DocumentModel {
	return DocumentModel{
		ID:            d.ID,
		Title:         d.Title,
		Content:       d.Content,
		AttachmentURL: attachmentURL,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
