package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// AdvisorRepository manages academic advisor documents.
type AdvisorRepository struct {
	db *sqlx.DB
}

// NewAdvisorRepository constructs an AdvisorRepository.
func NewAdvisorRepository(db *sqlx.DB) *AdvisorRepository {
	return &AdvisorRepository{db: db}
}

// List returns all advisors ordered by name.
func (r *AdvisorRepository) List(ctx context.Context) ([]models.Advisor, error) {
	const query = `SELECT id, doc FROM academic_advisors`
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	defer rows.Close()

	var advisors []models.Advisor
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan advisor row: %w", err)
		}
		var advisor models.Advisor
		if err := json.Unmarshal(raw, &advisor); err != nil {
			return nil, fmt.Errorf("unmarshal advisor doc: %w", err)
		}
		advisor.ID = id
		advisors = append(advisors, advisor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate advisors: %w", err)
	}
	return advisors, nil
}

// Upsert stores an advisor document, assigning an ID when absent.
func (r *AdvisorRepository) Upsert(ctx context.Context, advisor *models.Advisor) error {
	if advisor.ID == "" {
		advisor.ID = uuid.NewString()
	}
	payload, err := json.Marshal(advisor)
	if err != nil {
		return fmt.Errorf("marshal advisor doc: %w", err)
	}
	const query = `INSERT INTO academic_advisors (id, doc) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`
	if _, err := r.db.ExecContext(ctx, query, advisor.ID, payload); err != nil {
		return fmt.Errorf("upsert advisor: %w", err)
	}
	return nil
}

// Delete removes an advisor by ID.
func (r *AdvisorRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM academic_advisors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete advisor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete advisor rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
