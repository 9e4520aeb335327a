package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// LabRepository manages persistence of lab timetable documents. Each
// semester of a lab year is one JSONB document replaced in full on save.
type LabRepository struct {
	db *sqlx.DB
}

// NewLabRepository constructs a LabRepository.
func NewLabRepository(db *sqlx.DB) *LabRepository {
	return &LabRepository{db: db}
}

// ListYears returns the known lab years, most recently updated first.
func (r *LabRepository) ListYears(ctx context.Context) ([]models.LabYear, error) {
	const query = `SELECT id, label, updated_at FROM lab_years ORDER BY updated_at DESC`
	var years []models.LabYear
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("list lab years: %w", err)
	}
	return years, nil
}

// LatestYear returns the most recently updated lab year, or nil when no
// timetable has ever been loaded.
func (r *LabRepository) LatestYear(ctx context.Context) (*models.LabYear, error) {
	const query = `SELECT id, label, updated_at FROM lab_years ORDER BY updated_at DESC LIMIT 1`
	var year models.LabYear
	if err := r.db.GetContext(ctx, &year, query); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest lab year: %w", err)
	}
	return &year, nil
}

// GetSemester returns one semester document of a year, or nil when absent.
func (r *LabRepository) GetSemester(ctx context.Context, yearID string, semester int) (*models.LabSemesterDoc, error) {
	const query = `SELECT doc FROM lab_semesters WHERE year_id = $1 AND semester = $2`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, yearID, semester); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get lab semester: %w", err)
	}
	var doc models.LabSemesterDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal lab semester doc: %w", err)
	}
	return &doc, nil
}

// ListSemesters returns every semester document of a year in semester order.
func (r *LabRepository) ListSemesters(ctx context.Context, yearID string) ([]models.LabSemesterDoc, error) {
	const query = `SELECT doc FROM lab_semesters WHERE year_id = $1 ORDER BY semester`
	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, query, yearID); err != nil {
		return nil, fmt.Errorf("list lab semesters: %w", err)
	}
	docs := make([]models.LabSemesterDoc, 0, len(rows))
	for _, raw := range rows {
		var doc models.LabSemesterDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal lab semester doc: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ReplaceSemester stores a whole semester document and bumps the owning
// year's updated_at so it becomes the active year.
func (r *LabRepository) ReplaceSemester(ctx context.Context, yearID, yearLabel string, doc models.LabSemesterDoc) (err error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal lab semester doc: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lab replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	const yearQuery = `INSERT INTO lab_years (id, label, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label, updated_at = EXCLUDED.updated_at`
	if _, err = tx.ExecContext(ctx, yearQuery, yearID, yearLabel, now); err != nil {
		return fmt.Errorf("upsert lab year: %w", err)
	}

	const docQuery = `INSERT INTO lab_semesters (year_id, semester, doc) VALUES ($1, $2, $3)
        ON CONFLICT (year_id, semester) DO UPDATE SET doc = EXCLUDED.doc`
	if _, err = tx.ExecContext(ctx, docQuery, yearID, doc.Semester, payload); err != nil {
		return fmt.Errorf("replace lab semester: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit lab replace: %w", err)
	}
	return nil
}
