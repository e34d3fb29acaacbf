package providers

import (
	"context"
	"sync"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/storage"
)

// MemoryTemplateProvider keeps saved templates for the lifetime of the process.
type MemoryTemplateProvider struct {
	mu        sync.RWMutex
	order     []string
	templates map[string]domains.SavedTemplate
}

func NewMemoryTemplateProvider() *MemoryTemplateProvider {
	return &MemoryTemplateProvider{templates: make(map[string]domains.SavedTemplate)}
}

func (s *MemoryTemplateProvider) SaveTemplate(_ context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error) {
	saved := domains.SavedTemplate{
		ID:          NewTemplateID(),
		Name:        template.Name,
		Description: template.Description,
		Blocks:      domains.CloneBlocks(template.Blocks),
		CreatedAt:   now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[saved.ID] = saved
	s.order = append(s.order, saved.ID)
	return saved, nil
}

func (s *MemoryTemplateProvider) GetAllTemplates(_ context.Context) ([]domains.SavedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domains.SavedTemplate, 0, len(s.order))
	for _, id := range s.order {
		t := s.templates[id]
		t.Blocks = domains.CloneBlocks(t.Blocks)
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryTemplateProvider) GetTemplateById(_ context.Context, templateId string) (domains.SavedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[templateId]
	if !ok {
		return domains.SavedTemplate{}, storage.ErrNotFound
	}
	t.Blocks = domains.CloneBlocks(t.Blocks)
	return t, nil
}

func (s *MemoryTemplateProvider) DeleteTemplate(_ context.Context, templateId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[templateId]; !ok {
		return storage.ErrNotFound
	}
	delete(s.templates, templateId)
	for i, id := range s.order {
		if id == templateId {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
