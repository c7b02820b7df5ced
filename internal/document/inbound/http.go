package inbound

import (
	"context"

	"github.com/docuvault/docuvault/internal/document/usecase"
	"github.com/docuvault/docuvault/internal/pkg/router"
)

type uc interface {
	DocumentList(ctx context.Context, in usecase.DocumentListInput) (*usecase.DocumentListOutput, error)
	DocumentCreate(ctx context.Context, in usecase.DocumentCreateInput) (*usecase.DocumentCreateOutput, error)
	DocumentDetail(ctx context.Context, in usecase.DocumentDetailInput) (*usecase.DocumentDetailOutput, error)
	DocumentAttach(ctx context.Context, in usecase.DocumentAttachInput) (*usecase.DocumentAttachOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Document store (need authenticated)
	r.GET("/api/documents", end.DocumentList)
	r.POST("/api/documents", end.DocumentCreate)
	r.GET("/api/documents/:id", end.DocumentDetail)
	r.PUT("/api/documents/:id/attachment", end.DocumentAttach)
}
