package httptransport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhoo999/mail-maker/internal/config"
	"github.com/mhoo999/mail-maker/internal/generator"
	"github.com/mhoo999/mail-maker/internal/httpx"
	"github.com/mhoo999/mail-maker/internal/service"
	"github.com/mhoo999/mail-maker/internal/storage/providers"
)

func Router(allProviders *providers.Providers, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(httpx.Logger)

	gen := generator.New()
	mailService := service.NewMailService(gen, cfg.Layout)
	templateService := service.NewTemplateService(allProviders.TemplateProvider, gen, cfg.Layout)
	authService := service.NewAuthService(cfg.Auth)

	mailHandler := NewMailHandlers(mailService)
	templateHandler := NewTemplateHandlers(templateService)
	authHandler := NewAuthHandlers(authService)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	mail := api.PathPrefix("/mail").Subrouter()
	mail.HandleFunc("/generate", mailHandler.Generate).Methods(http.MethodPost)
	mail.HandleFunc("/parse", mailHandler.Parse).Methods(http.MethodPost)
	mail.HandleFunc("/inspect", mailHandler.Inspect).Methods(http.MethodPost)

	api.HandleFunc("/starters", templateHandler.GetStarters).Methods(http.MethodGet)
	api.HandleFunc("/starters/{id}", templateHandler.LoadStarter).Methods(http.MethodGet)

	templates := api.PathPrefix("/templates").Subrouter()
	templates.HandleFunc("", templateHandler.GetAllTemplates).Methods(http.MethodGet)
	templates.HandleFunc("/{id}", templateHandler.LoadTemplate).Methods(http.MethodGet)
	templates.HandleFunc("/{id}/preview", templateHandler.PreviewTemplate).Methods(http.MethodGet)

	writes := templates.NewRoute().Subrouter()
	if cfg.Auth.Enabled {
		writes.Use(httpx.Protected(cfg.Auth.Secret))
	}
	writes.HandleFunc("", templateHandler.CreateTemplate).Methods(http.MethodPost)
	writes.HandleFunc("/{id}", templateHandler.DeleteTemplate).Methods(http.MethodDelete)

	return router
}
