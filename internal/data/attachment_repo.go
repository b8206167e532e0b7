package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medidea/medidea-api/internal/data/pgxutil"
	"github.com/medidea/medidea-api/internal/domain/model"
)

// AttachmentRepo provides database operations for attachment metadata.
// Attachments are immutable once recorded; there is no update path.
type AttachmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAttachmentRepo creates a new AttachmentRepo with real time provider.
func NewAttachmentRepo(db *sql.DB) *AttachmentRepo {
	return &AttachmentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewAttachmentRepoWithTimeProvider creates a new AttachmentRepo with a custom time provider (useful for tests).
func NewAttachmentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AttachmentRepo {
	return &AttachmentRepo{DB: db, timeProvider: tp}
}

const (
	attachmentColumns = `id, activity_id, file_name, content_type, size_bytes, storage_key, uploaded_by, created_at`

	attachmentGetByIDQuery = `
		SELECT id, activity_id, file_name, content_type, size_bytes, storage_key, uploaded_by, created_at
		FROM attachments
		WHERE id = $1`

	attachmentListByActivityQuery = `
		SELECT id, activity_id, file_name, content_type, size_bytes, storage_key, uploaded_by, created_at
		FROM attachments
		WHERE activity_id = $1
		ORDER BY created_at DESC`
)

// Create records metadata for an uploaded blob.
func (r *AttachmentRepo) Create(
	ctx context.Context,
	req *model.CreateAttachmentRequest,
) (*model.Attachment, error) {
	if req == nil {
		return nil, errors.New("create attachment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Attachment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO attachments (activity_id, file_name, content_type, size_bytes, storage_key, uploaded_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+attachmentColumns,
			req.ActivityID,
			strings.TrimSpace(req.FileName),
			req.ContentType,
			req.SizeBytes,
			req.StorageKey,
			req.UploadedBy,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Attachment])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	return &out, nil
}

// GetByID retrieves attachment metadata by ID.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*model.Attachment, error) {
	var att model.Attachment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, attachmentGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		att, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Attachment])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment by ID: %w", err)
	}
	return &att, nil
}

// ListByActivity retrieves all attachments recorded for an activity.
func (r *AttachmentRepo) ListByActivity(ctx context.Context, activityID string) ([]*model.Attachment, error) {
	var rowsOut []model.Attachment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, attachmentListByActivityQuery, activityID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Attachment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	res := make([]*model.Attachment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete removes attachment metadata by ID. Blob cleanup is the caller's job.
func (r *AttachmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete attachment: %w", err)
	}
	return rows > 0, nil
}
