package db

import (
	"context"

	"github.com/docuvault/docuvault/internal/document/entity"
)

func (s *DB) GetDocumentList(ctx context.Context, filter entity.DocumentListFilter) (_ []entity.Document, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetDocumentList")
	defer func() { s.endSpan(span, err) }()

	var count int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	rows, err := s.conn.Query(ctx, `
		SELECT id, title, content, attachment_key, created_by, created_at, updated_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, filter.Size, filter.Page)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}
	defer rows.Close()

	docs := make([]entity.Document, 0, filter.Size)
	for rows.Next() {
		var d entity.Document
		if err = rows.Scan(&d.ID, &d.Title, &d.Content, &d.AttachmentKey, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			err = s.mapError(err)
			return nil, 0, err
		}
		docs = append(docs, d)
	}
	if err = rows.Err(); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	return docs, count, nil
}

func (s *DB) GetDocumentByID(ctx context.Context, id int64) (_ *entity.Document, err error) {
	ctx, span := s.startSpan(ctx, "GetDocumentByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, title, content, attachment_key, created_by, created_at, updated_at
		FROM documents
		WHERE id = $1`, id)

	var d entity.Document
	if err = row.Scan(&d.ID, &d.Title, &d.Content, &d.AttachmentKey, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &d, nil
}
