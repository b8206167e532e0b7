package model

import (
	"errors"
	"strings"
	"time"
)

// Attachment is file metadata for a blob linked to a service activity.
// The bytes themselves live in the blob store under StorageKey.
type Attachment struct {
	ID          string    `json:"id"           db:"id"`
	ActivityID  string    `json:"activity_id"  db:"activity_id"`
	FileName    string    `json:"file_name"    db:"file_name"`
	ContentType string    `json:"content_type" db:"content_type"`
	SizeBytes   int64     `json:"size_bytes"   db:"size_bytes"`
	StorageKey  string    `json:"-"            db:"storage_key"`
	UploadedBy  int64     `json:"uploaded_by"  db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// CreateAttachmentRequest carries metadata for recording an uploaded blob.
type CreateAttachmentRequest struct {
	ActivityID  string
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	UploadedBy  int64
}

// Validate checks the create request fields.
func (r *CreateAttachmentRequest) Validate() error {
	if strings.TrimSpace(r.ActivityID) == "" {
		return errors.New("activity_id is required")
	}
	if strings.TrimSpace(r.FileName) == "" {
		return errors.New("file_name is required")
	}
	if strings.TrimSpace(r.StorageKey) == "" {
		return errors.New("storage_key is required")
	}
	if r.SizeBytes < 0 {
		return errors.New("size_bytes cannot be negative")
	}
	return nil
}
