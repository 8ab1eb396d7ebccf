package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stayhub/database"
	"stayhub/models"
)

// ContactRepository stores contact-form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
}

// PgContactRepo is the Postgres-backed ContactRepository.
type PgContactRepo struct {
	DB *pgxpool.Pool
}

// NewPgContactRepo creates a ContactRepository over the global pool.
func NewPgContactRepo() *PgContactRepo {
	return &PgContactRepo{DB: database.GetPool()}
}

func (r *PgContactRepo) Insert(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	_, err := r.DB.Exec(ctx,
		`INSERT INTO contacts (id, name, email, phone, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.Message, contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *PgContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
