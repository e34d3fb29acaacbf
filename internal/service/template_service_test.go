package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/generator"
	"github.com/mhoo999/mail-maker/internal/parser"
	"github.com/mhoo999/mail-maker/internal/service"
	"github.com/mhoo999/mail-maker/internal/storage/providers"
)

func newTemplateService() *service.TemplateService {
	return service.NewTemplateService(providers.NewMemoryTemplateProvider(), generator.New(), domains.DefaultLayout())
}

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "  Weekly  "})
	require.NoError(t, err)
	assert.Equal(t, "Weekly", saved.Name)
	assert.NotNil(t, saved.Blocks)

	_, err = svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "   "})
	assert.ErrorIs(t, err, service.ErrInvalidTemplate)
	assert.ErrorIs(t, err, domains.ErrTemplateNameEmpty)

	_, err = svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "x", Blocks: domains.Blocks{nil}})
	assert.ErrorIs(t, err, service.ErrInvalidTemplate)
	assert.ErrorIs(t, err, domains.ErrNilBlock)
}

func TestLoadTemplateStampsFreshIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{
		Name:   "x",
		Blocks: domains.Blocks{domains.TitleBlock{ID: "orig", Text: "Hi", Level: domains.TitleH1}},
	})
	require.NoError(t, err)

	blocks, err := svc.LoadTemplate(ctx, saved.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.NotEqual(t, "orig", blocks[0].BlockID())
	assert.Equal(t, "Hi", blocks[0].(domains.TitleBlock).Text)
}

func TestTemplateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	_, err := svc.GetTemplateById(ctx, "custom-missing")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
	_, err = svc.LoadTemplate(ctx, "custom-missing")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
	_, err = svc.PreviewTemplate(ctx, "custom-missing")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, "custom-missing"), service.ErrTemplateNotFound)
}

func TestPreviewTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	blocks := domains.Blocks{domains.TextBlock{ID: "a", Content: "<p>Preview</p>"}}
	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "x", Blocks: blocks})
	require.NoError(t, err)

	html, err := svc.PreviewTemplate(ctx, saved.ID)
	require.NoError(t, err)
	got, err := parser.Parse(html)
	require.NoError(t, err)
	assert.Equal(t, blocks, got)
}

func TestDeleteTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	saved, err := svc.CreateTemplate(ctx, domains.TemplateCreate{Name: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTemplate(ctx, saved.ID))

	all, err := svc.GetAllTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStarters(t *testing.T) {
	svc := newTemplateService()
	assert.Len(t, svc.Starters(), 3)

	first, err := svc.LoadStarter("notice")
	require.NoError(t, err)
	second, err := svc.LoadStarter("notice")
	require.NoError(t, err)
	assert.NotEqual(t, first[0].BlockID(), second[0].BlockID())

	_, err = svc.LoadStarter("missing")
	assert.ErrorIs(t, err, service.ErrStarterNotFound)
}
