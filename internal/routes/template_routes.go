// internal/routes/template_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"kemisemail/internal/handlers"
	"kemisemail/internal/services"
)

func RegisterTemplateRoutes(r chi.Router, service *services.TemplateService) {
	h := handlers.NewGenerateHandler(service)

	r.Post("/generate", h.GenerateTemplate)
	r.Post("/regenerate-preview", h.RegeneratePreview)
}
