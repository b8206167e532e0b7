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

// EquipmentRepo provides database operations for equipment.
type EquipmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewEquipmentRepo creates a new EquipmentRepo with real time provider.
func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewEquipmentRepoWithTimeProvider creates a new EquipmentRepo with a custom time provider (useful for tests).
func NewEquipmentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *EquipmentRepo {
	return &EquipmentRepo{DB: db, timeProvider: tp}
}

const (
	equipmentColumns = `id, customer_id, name, brand, model, serial_number, installed_at, notes, created_at, updated_at`

	equipmentGetByIDQuery = `
		SELECT id, customer_id, name, brand, model, serial_number, installed_at, notes, created_at, updated_at
		FROM equipment
		WHERE id = $1`
)

// Create inserts a new piece of equipment.
func (r *EquipmentRepo) Create(
	ctx context.Context,
	req *model.CreateEquipmentRequest,
) (*model.Equipment, error) {
	if req == nil {
		return nil, errors.New("create equipment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Equipment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO equipment (customer_id, name, brand, model, serial_number, installed_at, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+equipmentColumns,
			req.CustomerID,
			strings.TrimSpace(req.Name),
			req.Brand,
			req.Model,
			strings.TrimSpace(req.SerialNumber),
			req.InstalledAt,
			req.Notes,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Equipment])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves equipment by ID.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	var eq model.Equipment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, equipmentGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		eq, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Equipment])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment by ID: %w", err)
	}
	return &eq, nil
}

// List retrieves equipment with paging, optionally scoped to a customer
// or filtered by a name/serial substring.
func (r *EquipmentRepo) List(
	ctx context.Context,
	opts model.EquipmentListOptions,
) ([]*model.Equipment, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if opts.CustomerID != nil && strings.TrimSpace(*opts.CustomerID) != "" {
		args = append(args, strings.TrimSpace(*opts.CustomerID))
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		args = append(args, "%"+strings.TrimSpace(*opts.Q)+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR serial_number ILIKE $%d)", len(args), len(args)))
	}

	query := "SELECT " + equipmentColumns + " FROM equipment"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.Equipment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Equipment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	res := make([]*model.Equipment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a piece of equipment.
func (r *EquipmentRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateEquipmentRequest,
) (*model.Equipment, error) {
	if req == nil {
		return nil, errors.New("update equipment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Equipment
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, equipmentGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Equipment])
			return e
		}
		args = append(args, id)
		query := "UPDATE equipment SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + equipmentColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Equipment])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating equipment based on the request.
func (r *EquipmentRepo) buildUpdateClause(req *model.UpdateEquipmentRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Brand != nil {
		setParts = append(setParts, fmt.Sprintf("brand = $%d", nextIdx()))
		args = append(args, *req.Brand)
	}
	if req.Model != nil {
		setParts = append(setParts, fmt.Sprintf("model = $%d", nextIdx()))
		args = append(args, *req.Model)
	}
	if req.SerialNumber != nil {
		setParts = append(setParts, fmt.Sprintf("serial_number = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.SerialNumber))
	}
	if req.InstalledAt != nil {
		setParts = append(setParts, fmt.Sprintf("installed_at = $%d", nextIdx()))
		args = append(args, *req.InstalledAt)
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
		args = append(args, *req.Notes)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes equipment by ID.
func (r *EquipmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete equipment: %w", err)
	}
	return rows > 0, nil
}

func (r *EquipmentRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrEquipmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEquipmentSerialExists
		case pgerrcode.ForeignKeyViolation:
			return ErrCustomerNotFound
		}
	}
	return err
}
