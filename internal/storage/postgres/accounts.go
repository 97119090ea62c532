package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/jobtracker-be/internal/models"
)

const accountColumns = `id, email, name, last_name, location, created_at`

// CreateAccount inserts a new account row; duplicate emails yield storage.ErrAlreadyExists.
func (s *Store) CreateAccount(ctx context.Context, account models.AccountWithSecret) (models.Account, error) {
	const query = `
		INSERT INTO accounts (id, email, name, last_name, location, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + accountColumns
	row := s.pool.QueryRow(ctx, query,
		account.ID, account.Email, account.Name, account.LastName, account.Location,
		account.PasswordHash, account.CreatedAt)
	return scanAccount(row)
}

// FindByEmail returns the public projection.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

// FindCredentialsByEmail is the only read path that selects password_hash.
func (s *Store) FindCredentialsByEmail(ctx context.Context, email string) (models.AccountWithSecret, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+`, password_hash FROM accounts WHERE email = $1`, email)
	var acc models.AccountWithSecret
	err := row.Scan(&acc.ID, &acc.Email, &acc.Name, &acc.LastName, &acc.Location, &acc.CreatedAt, &acc.PasswordHash)
	if err != nil {
		return models.AccountWithSecret{}, translate(err)
	}
	acc.CreatedAt = acc.CreatedAt.UTC()
	return acc, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (models.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// UpdateProfile rewrites email, name, last name and location.
func (s *Store) UpdateProfile(ctx context.Context, account models.Account) (models.Account, error) {
	const query = `
		UPDATE accounts
		SET email = $2, name = $3, last_name = $4, location = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + accountColumns
	row := s.pool.QueryRow(ctx, query, account.ID, account.Email, account.Name, account.LastName, account.Location)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var acc models.Account
	if err := row.Scan(&acc.ID, &acc.Email, &acc.Name, &acc.LastName, &acc.Location, &acc.CreatedAt); err != nil {
		return models.Account{}, translate(err)
	}
	acc.CreatedAt = acc.CreatedAt.UTC()
	return acc, nil
}
