package usecase

import (
	"context"
	"log/slog"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

type DocumentListInput struct {
	Size int32
	Page int32
}

type DocumentListOutput struct {
	Page      int32
	Size      int32
	Total     int64
	Documents []entity.Document
}

func (s *Usecase) DocumentList(ctx context.Context, in DocumentListInput) (*DocumentListOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentList")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20 // default limit
	}

	filter := entity.DocumentListFilter{
		Size: in.Size,
		Page: (max(in.Page, 1) - 1) * in.Size,
	}

	docs, count, err := s.repoDB.GetDocumentList(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list documents", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DocumentListOutput{
		Page:      max(in.Page, 1),
		Size:      in.Size,
		Total:     count,
		Documents: docs,
	}, nil
}
