package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/storage"
)

//nolint:gochecknoglobals // global for fast reuse
var attachmentContentTypeExt = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"text/plain":      ".txt",
}

var errAttachmentTooLarge = errors.New("attachment exceeds max size")

type DocumentAttachInput struct {
	ID          int64
	File        io.Reader
	ContentType string
}

type DocumentAttachOutput struct {
	AttachmentKey string
}

func (s *Usecase) DocumentAttach(ctx context.Context, in DocumentAttachInput) (*DocumentAttachOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentAttach")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "attachment", "attachment file is required")
	}

	contentType, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(in.ContentType)), ";")
	ext, ok := attachmentContentTypeExt[strings.TrimSpace(contentType)]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "attachment", "unsupported attachment content type")
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

	bucket := strings.TrimSpace(s.cfg.GetString("modules.document.attachment_bucket"))
	maxSize := s.cfg.GetInt64("modules.document.attachment_max_size_bytes")
	key := fmt.Sprintf("%d/%s%s", doc.ID, s.uuid.Generate(), ext)

	reader := &maxBytesReader{
		r:   in.File,
		max: maxSize,
	}
	_, err = s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"uploaded_by": strconv.FormatInt(clm.UserID, 10)},
	})
	if err != nil {
		if errors.Is(err, errAttachmentTooLarge) {
			return nil, goerror.NewInvalidInput(errAttachmentTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload document attachment", "document_id", doc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.SetDocumentAttachment(ctx, doc.ID, key); err != nil {
		slog.ErrorContext(ctx, "failed to record document attachment", "document_id", doc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Replaced attachments leave an orphan object behind; removal is best
	// effort since the new key is already recorded.
	if doc.AttachmentKey != "" && doc.AttachmentKey != key {
		if err := s.storage.DeleteObject(ctx, bucket, doc.AttachmentKey); err != nil {
			slog.WarnContext(ctx, "failed to delete replaced attachment", "document_id", doc.ID, "key", doc.AttachmentKey, "error", err)
		}
	}

	return &DocumentAttachOutput{AttachmentKey: key}, nil
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errAttachmentTooLarge
		}

		// Only an actual extra byte trips the limit; (0, nil) reads are
		// legal and mean "try again".
		for {
			n, err := m.r.Read(m.buf[:])
			if n > 0 {
				m.ended = true
				return 0, errAttachmentTooLarge
			}
			if err != nil {
				return 0, err
			}
		}
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
