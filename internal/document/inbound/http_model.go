package inbound

import (
	"net/http"
	"time"
)

type DocumentModel struct {
	ID            int64     `json:"id,string"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedBy     int64     `json:"created_by,string"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DocumentListResponse struct {
	Success   bool            `json:"success"`
	Documents []DocumentModel `json:"documents"`
	Meta      map[string]any  `json:"meta"`
}

type DocumentCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DocumentCreateResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Document DocumentModel `json:"document"`
}

func (DocumentCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type DocumentDetailResponse struct {
	Success  bool          `json:"success"`
	Document DocumentModel `json:"document"`
}

type DocumentAttachResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AttachmentKey string `json:"attachment_key"`
}
