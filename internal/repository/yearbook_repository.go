package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// YearbookRepository manages persistence of curriculum yearbooks.
type YearbookRepository struct {
	db *sqlx.DB
}

// NewYearbookRepository constructs a YearbookRepository.
func NewYearbookRepository(db *sqlx.DB) *YearbookRepository {
	return &YearbookRepository{db: db}
}

// List returns all yearbooks ordered by identifier, newest first.
func (r *YearbookRepository) List(ctx context.Context) ([]models.Yearbook, error) {
	const query = `SELECT id, display_name FROM yearbooks ORDER BY id DESC`
	var yearbooks []models.Yearbook
	if err := r.db.SelectContext(ctx, &yearbooks, query); err != nil {
		return nil, fmt.Errorf("list yearbooks: %w", err)
	}
	return yearbooks, nil
}

// Exists reports whether the yearbook is known.
func (r *YearbookRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM yearbooks WHERE id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check yearbook: %w", err)
	}
	return true, nil
}
