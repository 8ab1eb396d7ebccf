package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stayhub/database"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CredentialRepository resolves per-property API keys for the
// property-management system.
type CredentialRepository interface {
	GetAPIKey(ctx context.Context, propertyID string) (string, error)
}

// PgCredentialRepo is the Postgres-backed CredentialRepository.
type PgCredentialRepo struct {
	DB *pgxpool.Pool
}

// NewPgCredentialRepo creates a CredentialRepository over the global pool.
func NewPgCredentialRepo() *PgCredentialRepo {
	return &PgCredentialRepo{DB: database.GetPool()}
}

func (r *PgCredentialRepo) GetAPIKey(ctx context.Context, propertyID string) (string, error) {
	var apiKey string
	err := r.DB.QueryRow(ctx,
		`SELECT api_key FROM property_credentials WHERE property_id = $1`,
		propertyID).Scan(&apiKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: property %s", ErrNotFound, propertyID)
	}
	if err != nil {
		return "", fmt.Errorf("get api key: %w", err)
	}
	return apiKey, nil
}
