package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/storage"
)

// TemplateProvider keeps saved templates in Postgres.
type TemplateProvider struct {
	db *pgxpool.Pool
}

func NewTemplateProvider(pg *pgxpool.Pool) *TemplateProvider {
	return &TemplateProvider{
		db: pg,
	}
}

func (s *TemplateProvider) SaveTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error) {
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

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO saved_templates (id, name, description, blocks_json, created_at)
         VALUES ($1, $2, $3, $4, $5)`, saved.ID, saved.Name, saved.Description, blocksJSON, saved.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domains.SavedTemplate{}, storage.ErrTemplateExist
		}
		return domains.SavedTemplate{}, fmt.Errorf("insert template: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("commit template: %w", err)
	}
	return saved, nil
}

func (s *TemplateProvider) GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, description, blocks_json, created_at
         FROM saved_templates
         ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	templates, err := pgx.CollectRows(rows, scanTemplate)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *TemplateProvider) GetTemplateById(ctx context.Context, templateId string) (domains.SavedTemplate, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, description, blocks_json, created_at
        FROM saved_templates
        WHERE id = $1
    `, templateId)
	if err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("query template: %w", err)
	}

	template, err := pgx.CollectOneRow(rows, scanTemplate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domains.SavedTemplate{}, storage.ErrNotFound
	}
	if err != nil {
		return domains.SavedTemplate{}, err
	}
	return template, nil
}

func (s *TemplateProvider) DeleteTemplate(ctx context.Context, templateId string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM saved_templates WHERE id = $1`, templateId)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanTemplate(row pgx.CollectableRow) (domains.SavedTemplate, error) {
	var (
		t   domains.SavedTemplate
		raw []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &raw, &t.CreatedAt); err != nil {
		return domains.SavedTemplate{}, err
	}
	if err := json.Unmarshal(raw, &t.Blocks); err != nil {
		return domains.SavedTemplate{}, fmt.Errorf("decode template %s: %w", t.ID, err)
	}
	return t, nil
}
