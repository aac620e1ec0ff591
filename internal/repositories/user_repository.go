package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskboard/internal/models"
)

var ErrUserNotFound = fmt.Errorf("user not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// refresh helpers
	UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)
	ClearRefresh(ctx context.Context, userID int64) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, telegram_chat_id, refresh_token, refresh_expires_at, refresh_revoked`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.TelegramChatID,
		&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, telegram_chat_id)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.TelegramChatID,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *userRepository) UpdateRefresh(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=false WHERE id=$3`,
		token, expiresAt, userID)
	return err
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE refresh_token = $1`, token))
}

func (r *userRepository) ClearRefresh(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=true WHERE id=$1`,
		userID)
	return err
}
