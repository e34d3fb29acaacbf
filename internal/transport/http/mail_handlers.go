package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/httpx"
	"github.com/mhoo999/mail-maker/internal/parser"
	"github.com/mhoo999/mail-maker/internal/service"
)

type MailHandlers struct {
	service MailServices
}

type MailServices interface {
	Generate(blocks []domains.Block, layout *domains.LayoutSettings) (string, error)
	Parse(html string) (domains.Blocks, error)
	Inspect(html string) service.Inspection
}

func NewMailHandlers(service MailServices) *MailHandlers {
	return &MailHandlers{service: service}
}

func (h *MailHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.ReadBody[GenerateRequest](r)
	if err != nil {
		slog.Error("Generate read body err", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	html, err := h.service.Generate(req.Blocks, req.Layout)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to generate html")
		return
	}
	httpx.HTML(w, http.StatusOK, html)
}

func (h *MailHandlers) Parse(w http.ResponseWriter, r *http.Request) {
	html, err := httpx.ReadText(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	blocks, err := h.service.Parse(html)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrNotRecognized):
			httpx.Error(w, http.StatusBadRequest, "not a valid mail maker export")
		case errors.Is(err, parser.ErrMalformedMetadata):
			httpx.Error(w, http.StatusUnprocessableEntity, "export contains corrupt block data")
		default:
			httpx.Error(w, http.StatusInternalServerError, "failed to parse html")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, ParseResponse{Blocks: blocks, Count: len(blocks)})
}

func (h *MailHandlers) Inspect(w http.ResponseWriter, r *http.Request) {
	html, err := httpx.ReadText(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.Inspect(html))
}
