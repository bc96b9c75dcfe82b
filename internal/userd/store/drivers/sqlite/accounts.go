package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sablevale/userd/internal/userd/domain"
	"github.com/sablevale/userd/internal/userd/store"
)

type accountsRepo struct {
	db *sql.DB
}

const accountColumns = `id, email, username, first_name, last_name, password_hash, role, allow, created_at, updated_at`

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
	return scanAccount(row)
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, username, first_name, last_name, password_hash, role, allow, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.Username, a.FirstName, a.LastName, a.PasswordHash, a.Role, a.Allow, now, now)
	return mapConstraint(err)
}

func (r *accountsRepo) Update(ctx context.Context, id string, p domain.ProfilePatch, newHash string) error {
	var (
		res sql.Result
		err error
	)
	if newHash == "" {
		res, err = r.db.ExecContext(ctx,
			`UPDATE accounts
			 SET email = ?, username = ?, first_name = ?, last_name = ?, role = ?, allow = ?, updated_at = ?
			 WHERE id = ?`,
			p.Email, p.Username, p.FirstName, p.LastName, p.Role, p.Allow, time.Now().UTC(), id)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE accounts
			 SET email = ?, username = ?, first_name = ?, last_name = ?, role = ?, allow = ?, password_hash = ?, updated_at = ?
			 WHERE id = ?`,
			p.Email, p.Username, p.FirstName, p.LastName, p.Role, p.Allow, newHash, time.Now().UTC(), id)
	}
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *accountsRepo) SetAllow(ctx context.Context, id string, allow bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET allow = ?, updated_at = ? WHERE id = ?`,
		allow, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) ResetPassword(ctx context.Context, email string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, allow = 0, updated_at = ? WHERE email = ?`,
		newHash, time.Now().UTC(), email)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Username,
		&a.FirstName,
		&a.LastName,
		&a.PasswordHash,
		&a.Role,
		&a.Allow,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
