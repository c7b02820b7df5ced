package db

import (
	"context"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

func (s *DB) CreateDocument(ctx context.Context, doc entity.NewDocument) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDocument")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO documents (id, title, content, created_by)
		VALUES ($1, $2, $3, $4)`,
		doc.ID, doc.Title, doc.Content, doc.CreatedBy)
	err = s.mapError(err)
	return err
}

func (s *DB) SetDocumentAttachment(ctx context.Context, id int64, key string) (err error) {
	ctx, span := s.startSpan(ctx, "SetDocumentAttachment")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE documents
		SET attachment_key = $2, updated_at = now()
		WHERE id = $1`, id, key)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
