package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// tokenRepository persists refresh tokens in the refresh_tokens table so
// sessions survive restarts and can be revoked server-side.
type tokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new refresh token repository
func NewTokenRepository(db *pgxpool.Pool) TokenRepository {
	return &tokenRepository{db: db}
}

// CreateToken stores a refresh token for a user
func (r *tokenRepository) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expiry_date, is_revoked)
		VALUES ($1, $2, $3, false)
	`
	if _, err := r.db.Exec(ctx, query, token, userID, expiryDate); err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// GetTokenByValue looks up a refresh token
func (r *tokenRepository) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error) {
	var userID int64
	var expiryDate time.Time
	var isRevoked bool

	err := r.db.QueryRow(ctx,
		`SELECT user_id, expiry_date, is_revoked FROM refresh_tokens WHERE token = $1`,
		token).Scan(&userID, &expiryDate, &isRevoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, false, apperrors.ErrTokenNotFound
		}
		return 0, time.Time{}, false, fmt.Errorf("error retrieving refresh token: %w", err)
	}
	return userID, expiryDate, isRevoked, nil
}

// RevokeToken marks a single refresh token as revoked
func (r *tokenRepository) RevokeToken(ctx context.Context, token string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = true WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// RevokeAllUserTokens revokes every refresh token a user holds. Used on
// password change and account deactivation.
func (r *tokenRepository) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked = true WHERE user_id = $1 AND NOT is_revoked`, userID)
	if err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}
