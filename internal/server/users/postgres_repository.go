package users

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/userhub/internal/dbx"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/shared"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user row. The id and both timestamps are assigned
// by the database and returned with the row; caller-supplied values for
// those fields are ignored.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, email, password_hash, status)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, username, email, password_hash, status, created_at, updated_at
		 `

	created := &models.User{}
	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.PasswordHash, user.Status).
		Scan(&created.ID, &created.UserName, &created.Email, &created.PasswordHash,
			&created.Status, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, classifyDBError(err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, status, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.UserName, &user.Email, &user.PasswordHash,
			&user.Status, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyDBError(err)
	}

	return user, nil
}

func (r *PostgresRepository) ChangePassword(ctx context.Context, id int64, newHash string) error {
	query :=
		`UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, newHash, id)
	if err != nil {
		return classifyDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return shared.ErrorNotFound
	}

	return nil
}

// classifyDBError maps backend failures onto the shared sentinels:
// unique-constraint violations become ErrorAlreadyExists, connection-level
// failures become ErrorUnavailable, anything else is wrapped as-is.
func classifyDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return shared.ErrorAlreadyExists
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", shared.ErrorUnavailable, err)
	}

	return fmt.Errorf("db error: %w", err)
}
