package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/medidea/medidea-api/internal/data/pgxutil"
	"github.com/medidea/medidea-api/internal/domain/model"
)

// CustomerRepo provides database operations for customers.
type CustomerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCustomerRepo creates a new CustomerRepo with real time provider.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCustomerRepoWithTimeProvider creates a new CustomerRepo with a custom time provider (useful for tests).
func NewCustomerRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CustomerRepo {
	return &CustomerRepo{DB: db, timeProvider: tp}
}

const (
	customerColumns = `id, name, address, city, phone, email, notes, created_at, updated_at`

	customerGetByIDQuery = `
		SELECT id, name, address, city, phone, email, notes, created_at, updated_at
		FROM customers
		WHERE id = $1`
)

// Create inserts a new customer.
func (r *CustomerRepo) Create(
	ctx context.Context,
	req *model.CreateCustomerRequest,
) (*model.Customer, error) {
	if req == nil {
		return nil, errors.New("create customer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO customers (name, address, city, phone, email, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+customerColumns,
			strings.TrimSpace(req.Name),
			req.Address,
			req.City,
			req.Phone,
			req.Email,
			req.Notes,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, customerGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		customer, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return &customer, nil
}

// List retrieves customers with paging and optional name/city filters.
func (r *CustomerRepo) List(
	ctx context.Context,
	opts model.CustomersListOptions,
) ([]*model.Customer, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		args = append(args, "%"+strings.TrimSpace(*opts.Q)+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if opts.City != nil && strings.TrimSpace(*opts.City) != "" {
		args = append(args, strings.TrimSpace(*opts.City))
		where = append(where, fmt.Sprintf("city = $%d", len(args)))
	}

	query := "SELECT " + customerColumns + " FROM customers"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY name ASC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	res := make([]*model.Customer, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a customer.
func (r *CustomerRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateCustomerRequest,
) (*model.Customer, error) {
	if req == nil {
		return nil, errors.New("update customer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Customer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, customerGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
			return e
		}
		args = append(args, id)
		query := "UPDATE customers SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + customerColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a customer based on the request.
func (r *CustomerRepo) buildUpdateClause(req *model.UpdateCustomerRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", nextIdx()))
		args = append(args, *req.Address)
	}
	if req.City != nil {
		setParts = append(setParts, fmt.Sprintf("city = $%d", nextIdx()))
		args = append(args, *req.City)
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", nextIdx()))
		args = append(args, *req.Phone)
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, *req.Email)
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

// Delete deletes a customer by ID. Equipment and activities cascade in the schema.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}
	return rows > 0, nil
}
