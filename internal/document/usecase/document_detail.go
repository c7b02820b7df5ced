package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

type (
	DocumentDetailInput struct {
		ID int64 `validate:"required,gt=0"`
	}

	DocumentDetailOutput struct {
		Document      entity.Document
		AttachmentURL string
	}
)

func (s *Usecase) DocumentDetail(ctx context.Context, in DocumentDetailInput) (*DocumentDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentDetail")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	doc, err := s.repoDB.GetDocumentByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "document not found", "document_id", in.ID)
		return nil, goerror.NewBusiness("Document not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get document by id", "document_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &DocumentDetailOutput{Document: *doc}

	if doc.AttachmentKey != "" {
		bucket := strings.TrimSpace(s.cfg.GetString("modules.document.attachment_bucket"))
		expiry := s.cfg.GetMinute("modules.document.attachment_url_ttl_minutes")

		url, err := s.storage.PresignGet(ctx, bucket, doc.AttachmentKey, expiry)
		if err != nil {
			slog.WarnContext(ctx, "failed to presign attachment url", "document_id", doc.ID, "error", err)
		} else {
			out.AttachmentURL = url
		}
	}

	return out, nil
}
