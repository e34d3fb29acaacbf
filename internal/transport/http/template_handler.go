package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/httpx"
	"github.com/mhoo999/mail-maker/internal/service"
	"github.com/mhoo999/mail-maker/internal/storage"
)

type TemplateHandlers struct {
	service TemplateServices
}

type TemplateServices interface {
	CreateTemplate(ctx context.Context, template domains.TemplateCreate) (domains.SavedTemplate, error)
	GetAllTemplates(ctx context.Context) ([]domains.SavedTemplate, error)
	LoadTemplate(ctx context.Context, templateId string) (domains.Blocks, error)
	PreviewTemplate(ctx context.Context, templateId string) (string, error)
	DeleteTemplate(ctx context.Context, templateId string) error
	Starters() []domains.Template
	LoadStarter(id string) (domains.Blocks, error)
}

func NewTemplateHandlers(service TemplateServices) *TemplateHandlers {
	return &TemplateHandlers{
		service: service,
	}
}

func (h *TemplateHandlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	templateData, err := httpx.ReadBody[domains.TemplateCreate](r)
	if err != nil {
		slog.Error("CreateTemplate read template err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.CreateTemplate(r.Context(), templateData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTemplate):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrTemplateExist):
			httpx.Error(w, http.StatusConflict, "template already exists")
		default:
			httpx.Error(w, http.StatusInternalServerError, "failed to save template")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, saved)
}

func (h *TemplateHandlers) GetAllTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.GetAllTemplates(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	httpx.JSON(w, http.StatusOK, templates)
}

func (h *TemplateHandlers) LoadTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.GetId(w, r)
	if !ok {
		return
	}
	blocks, err := h.service.LoadTemplate(r.Context(), id)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BlocksResponse{Blocks: blocks})
}

func (h *TemplateHandlers) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.GetId(w, r)
	if !ok {
		return
	}
	html, err := h.service.PreviewTemplate(r.Context(), id)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.HTML(w, http.StatusOK, html)
}

func (h *TemplateHandlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.GetId(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteTemplate(r.Context(), id); err != nil {
		writeTemplateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandlers) GetStarters(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Starters())
}

func (h *TemplateHandlers) LoadStarter(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.GetId(w, r)
	if !ok {
		return
	}
	blocks, err := h.service.LoadStarter(id)
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BlocksResponse{Blocks: blocks})
}

func writeTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound), errors.Is(err, service.ErrStarterNotFound):
		httpx.Error(w, http.StatusNotFound, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "template operation failed")
	}
}
