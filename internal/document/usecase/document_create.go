package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

type DocumentCreateInput struct {
	Title   string `validate:"required,min=1,max=200"`
	Content string `validate:"required"`
}

type DocumentCreateOutput struct {
	Document entity.Document
}

func (s *Usecase) DocumentCreate(ctx context.Context, in DocumentCreateInput) (*DocumentCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "DocumentCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newDoc := entity.NewDocument{
		ID:        s.uid.Generate(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedBy: clm.UserID,
	}

	if err := s.repoDB.CreateDocument(ctx, newDoc); err != nil {
		slog.ErrorContext(ctx, "failed to repo create document", "error", err)
		return nil, goerror.NewServer(err)
	}

	doc, err := s.repoDB.GetDocumentByID(ctx, newDoc.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get created document", "document_id", newDoc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DocumentCreateOutput{Document: *doc}, nil
}
