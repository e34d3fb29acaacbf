package providers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/storage"
)

// SQLiteTemplateProvider keeps saved templates in a local database file.
type SQLiteTemplateProvider struct {
	db *sql.DB
}

func NewSQLiteTemplateProvider(db *sql.DB) *SQLiteTemplateProvider {
	return &SQLiteTemplateProvider{db: db}
}

func (s *SQLiteTemplateProvider) SaveTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error) {
	blocksJSON, err := json.Marshal(template.Blocks)
	if err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("encode blocks: %w", err)
	}

	saved := domains.SavedTemplate{
		ID:          NewTemplateID(),
		Name:        template.Name,
		Description: template.Description,
		Blocks:      domains.CloneBlocks(template.Blocks),
		CreatedAt:   now(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_templates (id, name, description, blocks_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		saved.ID, saved.Name, saved.Description, string(blocksJSON), saved.CreatedAt)
	if err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("insert template: %w", err)
	}
	return saved, nil
}

func (s *SQLiteTemplateProvider) GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, blocks_json, created_at FROM saved_templates ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	templates := []domains.SavedTemplate{}
	for rows.Next() {
		t, err := scanSQLiteTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *SQLiteTemplateProvider) GetTemplateById(ctx context.Context, templateId string) (domains.SavedTemplate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, blocks_json, created_at FROM saved_templates WHERE id = ?`, templateId)

	t, err := scanSQLiteTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domains.SavedTemplate{}, storage.ErrNotFound
	}
	return t, err
}

func (s *SQLiteTemplateProvider) DeleteTemplate(ctx context.Context, templateId string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_templates WHERE id = ?`, templateId)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTemplate(row rowScanner) (domains.SavedTemplate, error) {
	var (
		t   domains.SavedTemplate
		raw string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &raw, &t.CreatedAt); err != nil {
		return domains.SavedTemplate{}, err
	}
	if err := json.Unmarshal([]byte(raw), &t.Blocks); err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("decode template %s: %w", t.ID, err)
	}
	return t, nil
}
