package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/ports"
)

// AttachmentServiceOptions groups dependencies for AttachmentService.
type AttachmentServiceOptions struct {
	Attachments ports.AttachmentRepository
	Activities  ports.ActivityRepository
	Blobs       ports.BlobStore
}

// AttachmentService stores uploaded files and their metadata. The bytes go
// to the blob store under a generated key; the metadata row references it.
type AttachmentService struct {
	attachments ports.AttachmentRepository
	activities  ports.ActivityRepository
	blobs       ports.BlobStore
}

// NewAttachmentService constructs a new AttachmentService.
func NewAttachmentService(opts AttachmentServiceOptions) *AttachmentService {
	return &AttachmentService{
		attachments: opts.Attachments,
		activities:  opts.Activities,
		blobs:       opts.Blobs,
	}
}

// UploadInput groups parameters for storing an uploaded file.
type UploadInput struct {
	ActivityID  string
	FileName    string
	ContentType string
	UploadedBy  int64
	Body        io.Reader
}

// Upload verifies the activity exists, writes the bytes to the blob store,
// and records metadata. The blob is removed again if the metadata insert fails.
func (s *AttachmentService) Upload(ctx context.Context, in UploadInput) (*model.Attachment, error) {
	if in.Body == nil {
		return nil, fmt.Errorf("upload body is required")
	}
	if _, err := s.activities.GetByID(ctx, in.ActivityID); err != nil {
		return nil, err
	}

	contentType := in.ContentType
	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.NewString()
	size, err := s.blobs.Put(ctx, key, in.Body)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	att, err := s.attachments.Create(ctx, &model.CreateAttachmentRequest{
		ActivityID:  in.ActivityID,
		FileName:    in.FileName,
		ContentType: contentType,
		SizeBytes:   size,
		StorageKey:  key,
		UploadedBy:  in.UploadedBy,
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			slog.Default().WarnContext(ctx, "failed to remove orphaned blob", "key", key, "err", delErr)
		}
		return nil, err
	}
	return att, nil
}

// Open returns the metadata and a reader over the stored bytes.
// The caller owns closing the reader.
func (s *AttachmentService) Open(ctx context.Context, id string) (*model.Attachment, io.ReadCloser, error) {
	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, att.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open blob: %w", err)
	}
	return att, rc, nil
}

// GetByID retrieves attachment metadata by ID.
func (s *AttachmentService) GetByID(ctx context.Context, id string) (*model.Attachment, error) {
	return s.attachments.GetByID(ctx, id)
}

// ListByActivity retrieves attachments recorded for an activity.
func (s *AttachmentService) ListByActivity(ctx context.Context, activityID string) ([]*model.Attachment, error) {
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		return nil, err
	}
	return s.attachments.ListByActivity(ctx, activityID)
}

// Delete removes metadata first, then the blob best-effort. A dangling blob
// is preferable to metadata pointing at missing bytes.
func (s *AttachmentService) Delete(ctx context.Context, id string) (bool, error) {
	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	ok, err := s.attachments.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	if delErr := s.blobs.Delete(ctx, att.StorageKey); delErr != nil {
		slog.Default().WarnContext(ctx, "failed to delete blob", "key", att.StorageKey, "err", delErr)
	}
	return true, nil
}
