package entity

import (
	"time"
)

type Document struct {
	ID            int64
	Title         string
	Content       string
	AttachmentKey string
	CreatedBy     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ---- //

type NewDocument struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64
}

type DocumentListFilter struct {
	Size int32
	Page int32
}
