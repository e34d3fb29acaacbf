package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/generator"
	"github.com/mhoo999/mail-maker/internal/starter"
	"github.com/mhoo999/mail-maker/internal/storage"
)

type TemplateService struct {
	provider  TemplateProvider
	generator *generator.Generator
	layout    domains.LayoutSettings
}

type TemplateProvider interface {
	SaveTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error)
	GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error)
	GetTemplateById(ctx context.Context, templateId string) (domains.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, templateId string) error
}

func NewTemplateService(provider TemplateProvider, gen *generator.Generator, layout domains.LayoutSettings) *TemplateService {
	return &TemplateService{
		provider:  provider,
		generator: gen,
		layout:    layout,
	}
}

func (h *TemplateService) CreateTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error) {
	template.Name = strings.TrimSpace(template.Name)
	if template.Name == "" {
		return domains.SavedTemplate{}, fmt.Errorf("%w: %w", ErrInvalidTemplate, domains.ErrTemplateNameEmpty)
	}
	for i, b := range template.Blocks {
		if b == nil {
			return domains.SavedTemplate{}, fmt.Errorf("%w: block %d: %w", ErrInvalidTemplate, i, domains.ErrNilBlock)
		}
	}
	if template.Blocks == nil {
		template.Blocks = domains.Blocks{}
	}

	saved, err := h.provider.SaveTemplate(ctx, template)
	if err != nil {
		slog.Error("save template failed", "name", template.Name, "err", err)
		return domains.SavedTemplate{}, err
	}
	slog.Info("template saved", "id", saved.ID, "blocks", len(saved.Blocks))
	return saved, nil
}

func (h *TemplateService) GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error) {
	templates, err := h.provider.GetAllTemplates(ctx)
	if err != nil {
		slog.Error("list templates failed", "err", err)
		return nil, err
	}
	return templates, nil
}

func (h *TemplateService) GetTemplateById(ctx context.Context, templateId string) (domains.SavedTemplate, error) {
	template, err := h.provider.GetTemplateById(ctx, templateId)
	if errors.Is(err, storage.ErrNotFound) {
		return domains.SavedTemplate{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateId)
	}
	if err != nil {
		slog.Error("get template failed", "id", templateId, "err", err)
		return domains.SavedTemplate{}, err
	}
	return template, nil
}

// LoadTemplate returns the saved template's blocks with fresh ids, ready to
// replace the editing document.
func (h *TemplateService) LoadTemplate(ctx context.Context, templateId string) (domains.Blocks, error) {
	template, err := h.GetTemplateById(ctx, templateId)
	if err != nil {
		return nil, err
	}
	return template.Definition().Instantiate(), nil
}

func (h *TemplateService) PreviewTemplate(ctx context.Context, templateId string) (string, error) {
	template, err := h.GetTemplateById(ctx, templateId)
	if err != nil {
		return "", err
	}
	layout := h.layout
	return h.generator.Generate(template.Blocks, &layout)
}

func (h *TemplateService) DeleteTemplate(ctx context.Context, templateId string) error {
	err := h.provider.DeleteTemplate(ctx, templateId)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateId)
	}
	if err != nil {
		slog.Error("delete template failed", "id", templateId, "err", err)
		return err
	}
	slog.Info("template deleted", "id", templateId)
	return nil
}

func (h *TemplateService) Starters() []domains.Template {
	return starter.Definitions()
}

// LoadStarter instantiates a predefined template with fresh block ids.
func (h *TemplateService) LoadStarter(id string) (domains.Blocks, error) {
	template, ok := starter.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStarterNotFound, id)
	}
	return template.Instantiate(), nil
}
