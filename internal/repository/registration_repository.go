package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// RegistrationRepository manages per-semester registration guideline
// documents. A document is one JSONB blob; saves merge into the stored
// document so fields absent from the payload survive.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Get returns the guideline document of a semester, creating an empty one
// on first read so later merges always have a base.
func (r *RegistrationRepository) Get(ctx context.Context, semester int) (*models.RegistrationGuideline, error) {
	raw, err := r.getRaw(ctx, semester)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		empty := models.RegistrationGuideline{SemesterNumber: semester}
		payload, err := json.Marshal(empty)
		if err != nil {
			return nil, fmt.Errorf("marshal empty guideline: %w", err)
		}
		const insert = `INSERT INTO registration_guidelines (semester_number, doc) VALUES ($1, $2)
            ON CONFLICT (semester_number) DO NOTHING`
		if _, err := r.db.ExecContext(ctx, insert, semester, payload); err != nil {
			return nil, fmt.Errorf("create empty guideline: %w", err)
		}
		return &empty, nil
	}

	var doc models.RegistrationGuideline
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal guideline doc: %w", err)
	}
	return &doc, nil
}

func (r *RegistrationRepository) getRaw(ctx context.Context, semester int) ([]byte, error) {
	const query = `SELECT doc FROM registration_guidelines WHERE semester_number = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, semester); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get guideline doc: %w", err)
	}
	return raw, nil
}

// GetAll returns every semester's guideline document in semester order.
func (r *RegistrationRepository) GetAll(ctx context.Context) ([]models.RegistrationGuideline, error) {
	const query = `SELECT doc FROM registration_guidelines ORDER BY semester_number`
	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list guideline docs: %w", err)
	}
	docs := make([]models.RegistrationGuideline, 0, len(rows))
	for _, raw := range rows {
		var doc models.RegistrationGuideline
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal guideline doc: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Save merges the patch into the stored document. Nested objects merge
// key by key; arrays and scalars replace. The semester number is always
// stamped onto the document.
func (r *RegistrationRepository) Save(ctx context.Context, semester int, patch map[string]interface{}) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin guideline save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current := map[string]interface{}{}
	var raw []byte
	const selectQuery = `SELECT doc FROM registration_guidelines WHERE semester_number = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &raw, selectQuery, semester); err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("lock guideline doc: %w", err)
	}
	err = nil
	if raw != nil {
		if err = json.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("unmarshal guideline doc: %w", err)
		}
	}

	merged := deepMerge(current, patch)
	merged["semesterNumber"] = semester

	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal guideline doc: %w", err)
	}

	const upsert = `INSERT INTO registration_guidelines (semester_number, doc) VALUES ($1, $2)
        ON CONFLICT (semester_number) DO UPDATE SET doc = EXCLUDED.doc`
	if _, err = tx.ExecContext(ctx, upsert, semester, payload); err != nil {
		return fmt.Errorf("save guideline doc: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit guideline save: %w", err)
	}
	return nil
}

// deepMerge overlays src onto dst. Maps merge recursively, everything else
// in src wins.
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcOK := v.(map[string]interface{})
		dstMap, dstOK := out[k].(map[string]interface{})
		if srcOK && dstOK {
			out[k] = deepMerge(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}
