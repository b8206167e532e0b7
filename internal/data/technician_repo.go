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

// TechnicianRepo provides database operations for technicians.
type TechnicianRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTechnicianRepo creates a new TechnicianRepo with real time provider.
func NewTechnicianRepo(db *sql.DB) *TechnicianRepo {
	return &TechnicianRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTechnicianRepoWithTimeProvider creates a new TechnicianRepo with a custom time provider (useful for tests).
func NewTechnicianRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TechnicianRepo {
	return &TechnicianRepo{DB: db, timeProvider: tp}
}

const (
	technicianColumns = `id, name, email, phone, specialty, created_at, updated_at`

	technicianGetByIDQuery = `
		SELECT id, name, email, phone, specialty, created_at, updated_at
		FROM technicians
		WHERE id = $1`

	technicianListQuery = `
		SELECT id, name, email, phone, specialty, created_at, updated_at
		FROM technicians
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new technician.
func (r *TechnicianRepo) Create(
	ctx context.Context,
	req *model.CreateTechnicianRequest,
) (*model.Technician, error) {
	if req == nil {
		return nil, errors.New("create technician request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Technician
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO technicians (name, email, phone, specialty, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+technicianColumns,
			strings.TrimSpace(req.Name),
			strings.ToLower(strings.TrimSpace(req.Email)),
			req.Phone,
			req.Specialty,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Technician])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a technician by ID.
func (r *TechnicianRepo) GetByID(ctx context.Context, id string) (*model.Technician, error) {
	var tech model.Technician
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, technicianGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		tech, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Technician])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to get technician by ID: %w", err)
	}
	return &tech, nil
}

// List retrieves technicians with pagination.
func (r *TechnicianRepo) List(ctx context.Context, limit, offset int) ([]*model.Technician, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Technician
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, technicianListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Technician])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	res := make([]*model.Technician, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a technician.
func (r *TechnicianRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateTechnicianRequest,
) (*model.Technician, error) {
	if req == nil {
		return nil, errors.New("update technician request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Technician
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, technicianGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Technician])
			return e
		}
		args = append(args, id)
		query := "UPDATE technicians SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + technicianColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Technician])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a technician based on the request.
func (r *TechnicianRepo) buildUpdateClause(req *model.UpdateTechnicianRequest) (string, []any) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", nextIdx()))
		args = append(args, *req.Phone)
	}
	if req.Specialty != nil {
		setParts = append(setParts, fmt.Sprintf("specialty = $%d", nextIdx()))
		args = append(args, *req.Specialty)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes a technician by ID. Activities referencing the technician keep a NULL assignee.
func (r *TechnicianRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete technician: %w", err)
	}
	return rows > 0, nil
}

func (r *TechnicianRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrTechnicianNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrTechnicianEmailExists
	}
	return err
}
