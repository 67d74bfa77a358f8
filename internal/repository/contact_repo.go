package repository

import (
	"context"
	"fmt"

	"marketplace-api/internal/model"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.Name, m.Email, m.Message).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("create contact message: %w", err)
	}
	return m, nil
}
