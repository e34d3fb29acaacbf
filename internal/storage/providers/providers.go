package providers

import (
	"context"
	"fmt"

	"github.com/mhoo999/mail-maker/internal/config"
	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/storage"
)

// TemplateStore is implemented by every saved-template backend.
type TemplateStore interface {
	SaveTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error)
	GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error)
	GetTemplateById(ctx context.Context, templateId string) (domains.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, templateId string) error
}

var (
	_ TemplateStore = (*TemplateProvider)(nil)
	_ TemplateStore = (*SQLiteTemplateProvider)(nil)
	_ TemplateStore = (*MemoryTemplateProvider)(nil)
)

type Providers struct {
	TemplateProvider TemplateStore
	close            func()
}

// New opens the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (*Providers, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return &Providers{TemplateProvider: NewMemoryTemplateProvider(), close: func() {}}, nil
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Providers{
			TemplateProvider: NewSQLiteTemplateProvider(db),
			close:            func() { db.Close() },
		}, nil
	case config.DriverPostgres:
		pool, err := storage.InitDB(ctx, cfg.DatabaseUrl)
		if err != nil {
			return nil, err
		}
		return &Providers{
			TemplateProvider: NewTemplateProvider(pool),
			close:            pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func (p *Providers) Close() {
	if p.close != nil {
		p.close()
	}
}
