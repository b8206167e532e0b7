package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medidea/medidea-api/internal/data/pgxutil"
	"github.com/medidea/medidea-api/internal/domain/model"
)

// ActivityRepo provides database operations for service activities.
type ActivityRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewActivityRepo creates a new ActivityRepo with real time provider.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewActivityRepoWithTimeProvider creates a new ActivityRepo with a custom time provider (useful for tests).
func NewActivityRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: tp}
}

const (
	activityColumns = `id, customer_id, equipment_id, technician_id, kind, status, scheduled_at, completed_at, description, report, created_at, updated_at`

	activityGetByIDQuery = `
		SELECT id, customer_id, equipment_id, technician_id, kind, status, scheduled_at, completed_at,
		       description, report, created_at, updated_at
		FROM activities
		WHERE id = $1`
)

// Create inserts a new activity with status open.
func (r *ActivityRepo) Create(
	ctx context.Context,
	req *model.CreateActivityRequest,
) (*model.Activity, error) {
	if req == nil {
		return nil, errors.New("create activity request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Activity
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO activities (customer_id, equipment_id, technician_id, kind, status, scheduled_at, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+activityColumns,
			req.CustomerID,
			req.EquipmentID,
			req.TechnicianID,
			req.Kind,
			model.ActivityStatusOpen,
			req.ScheduledAt.UTC(),
			req.Description,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves an activity by ID.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var act model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, activityGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		act, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity by ID: %w", err)
	}
	return &act, nil
}

// List retrieves activities with paging and optional customer/technician/status filters.
func (r *ActivityRepo) List(
	ctx context.Context,
	opts model.ActivitiesListOptions,
) ([]*model.Activity, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if opts.CustomerID != nil && strings.TrimSpace(*opts.CustomerID) != "" {
		args = append(args, strings.TrimSpace(*opts.CustomerID))
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if opts.TechnicianID != nil && strings.TrimSpace(*opts.TechnicianID) != "" {
		args = append(args, strings.TrimSpace(*opts.TechnicianID))
		where = append(where, fmt.Sprintf("technician_id = $%d", len(args)))
	}
	if opts.Status != nil && opts.Status.Valid() {
		args = append(args, *opts.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := "SELECT " + activityColumns + " FROM activities"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY scheduled_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.Activity
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Activity])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	res := make([]*model.Activity, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an activity. Moving status to closed stamps
// completed_at; reopening clears it.
func (r *ActivityRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateActivityRequest,
) (*model.Activity, error) {
	if req == nil {
		return nil, errors.New("update activity request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, activityGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
			return e
		}
		args = append(args, id)
		query := "UPDATE activities SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + activityColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating an activity based on the request.
func (r *ActivityRepo) buildUpdateClause(req *model.UpdateActivityRequest) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 9)
	nextIdx := func() int { return len(args) + 1 }

	if req.EquipmentID != nil {
		if strings.TrimSpace(*req.EquipmentID) == "" {
			setParts = append(setParts, "equipment_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("equipment_id = $%d", nextIdx()))
			args = append(args, *req.EquipmentID)
		}
	}
	if req.TechnicianID != nil {
		if strings.TrimSpace(*req.TechnicianID) == "" {
			setParts = append(setParts, "technician_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("technician_id = $%d", nextIdx()))
			args = append(args, *req.TechnicianID)
		}
	}
	if req.Kind != nil {
		setParts = append(setParts, fmt.Sprintf("kind = $%d", nextIdx()))
		args = append(args, *req.Kind)
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
		if *req.Status == model.ActivityStatusClosed {
			setParts = append(setParts, fmt.Sprintf("completed_at = $%d", nextIdx()))
			args = append(args, r.timeProvider.Now().UTC())
		} else {
			setParts = append(setParts, "completed_at = NULL")
		}
	}
	if req.ScheduledAt != nil {
		setParts = append(setParts, fmt.Sprintf("scheduled_at = $%d", nextIdx()))
		args = append(args, req.ScheduledAt.UTC())
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Report != nil {
		setParts = append(setParts, fmt.Sprintf("report = $%d", nextIdx()))
		args = append(args, *req.Report)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes an activity by ID. Attachment metadata cascades in the schema.
func (r *ActivityRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}
	return rows > 0, nil
}

func (r *ActivityRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrActivityNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch {
		case strings.Contains(pgErr.ConstraintName, "customer"):
			return ErrCustomerNotFound
		case strings.Contains(pgErr.ConstraintName, "equipment"):
			return ErrEquipmentNotFound
		case strings.Contains(pgErr.ConstraintName, "technician"):
			return ErrTechnicianNotFound
		}
	}
	return err
}
