package store

import (
	"context"
	"errors"
	"fmt"

	"auth-service/internal/database"
	"auth-service/internal/domain"
	"auth-service/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Users 使用者資料存取，email 唯一性由資料庫 unique index 裁決
type Users struct {
	db database.DB
}

func NewUsers(db database.DB) *Users {
	return &Users{db: db}
}

func (s *Users) GetByID(ctx context.Context, userID int) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return u, nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return u, nil
}

// Create 寫入使用者並回填 id 與 created_at
// email 衝突 (unique_violation) 轉為 domain.ErrEmailAlreadyRegistered
func (s *Users) Create(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.Name,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("Create: %w", err)
	}
	return u, nil
}

func (s *Users) Update(ctx context.Context, u *model.User) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, name = $2, password_hash = $3, updated_at = now()
		 WHERE id = $4`,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
