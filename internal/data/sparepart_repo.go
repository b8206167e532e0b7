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

// SparePartRepo provides database operations for spare parts stock.
type SparePartRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSparePartRepo creates a new SparePartRepo with real time provider.
func NewSparePartRepo(db *sql.DB) *SparePartRepo {
	return &SparePartRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewSparePartRepoWithTimeProvider creates a new SparePartRepo with a custom time provider (useful for tests).
func NewSparePartRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *SparePartRepo {
	return &SparePartRepo{DB: db, timeProvider: tp}
}

const (
	sparePartColumns = `id, code, name, quantity, unit_price_cents, min_quantity, created_at, updated_at`

	sparePartGetByIDQuery = `
		SELECT id, code, name, quantity, unit_price_cents, min_quantity, created_at, updated_at
		FROM spare_parts
		WHERE id = $1`

	sparePartListQuery = `
		SELECT id, code, name, quantity, unit_price_cents, min_quantity, created_at, updated_at
		FROM spare_parts
		ORDER BY code ASC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new spare part.
func (r *SparePartRepo) Create(
	ctx context.Context,
	req *model.CreateSparePartRequest,
) (*model.SparePart, error) {
	if req == nil {
		return nil, errors.New("create spare part request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.SparePart
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO spare_parts (code, name, quantity, unit_price_cents, min_quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+sparePartColumns,
			strings.TrimSpace(req.Code),
			strings.TrimSpace(req.Name),
			req.Quantity,
			req.UnitPriceCents,
			req.MinQuantity,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SparePart])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a spare part by ID.
func (r *SparePartRepo) GetByID(ctx context.Context, id string) (*model.SparePart, error) {
	var part model.SparePart
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sparePartGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		part, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SparePart])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSparePartNotFound
		}
		return nil, fmt.Errorf("failed to get spare part by ID: %w", err)
	}
	return &part, nil
}

// List retrieves spare parts with pagination, ordered by code.
func (r *SparePartRepo) List(ctx context.Context, limit, offset int) ([]*model.SparePart, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.SparePart
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sparePartListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SparePart])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list spare parts: %w", err)
	}

	res := make([]*model.SparePart, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a spare part.
func (r *SparePartRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateSparePartRequest,
) (*model.SparePart, error) {
	if req == nil {
		return nil, errors.New("update spare part request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.SparePart
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, sparePartGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SparePart])
			return e
		}
		args = append(args, id)
		query := "UPDATE spare_parts SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + sparePartColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SparePart])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// AdjustQuantity atomically adds delta to the stock level, failing if the
// result would go negative.
func (r *SparePartRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*model.SparePart, error) {
	var out model.SparePart
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE spare_parts
			SET quantity = quantity + $1, updated_at = $2
			WHERE id = $3 AND quantity + $1 >= 0
			RETURNING `+sparePartColumns,
			delta, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SparePart])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// either the part does not exist or stock would go negative
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to adjust spare part quantity: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a spare part based on the request.
func (r *SparePartRepo) buildUpdateClause(req *model.UpdateSparePartRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Code != nil {
		setParts = append(setParts, fmt.Sprintf("code = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Code))
	}
	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Quantity != nil {
		setParts = append(setParts, fmt.Sprintf("quantity = $%d", nextIdx()))
		args = append(args, *req.Quantity)
	}
	if req.UnitPriceCents != nil {
		setParts = append(setParts, fmt.Sprintf("unit_price_cents = $%d", nextIdx()))
		args = append(args, *req.UnitPriceCents)
	}
	if req.MinQuantity != nil {
		setParts = append(setParts, fmt.Sprintf("min_quantity = $%d", nextIdx()))
		args = append(args, *req.MinQuantity)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes a spare part by ID.
func (r *SparePartRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete spare part: %w", err)
	}
	return rows > 0, nil
}

func (r *SparePartRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrSparePartNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrSparePartCodeExists
	}
	return err
}
