// internal/routes/asset_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"kemisemail/internal/config"
	"kemisemail/internal/handlers"
)

// RegisterAssetRoutes serves local images at the root so that embedded email
// URLs stay short and stable.
func RegisterAssetRoutes(r chi.Router, cfg *config.Config) {
	h := handlers.NewAssetHandler(cfg.ImageDir, cfg.TemplateDir)

	r.Get("/images/{filename}", h.ServeImage)
}

func RegisterDownloadRoutes(r chi.Router, cfg *config.Config) {
	h := handlers.NewAssetHandler(cfg.ImageDir, cfg.TemplateDir)

	r.Get("/download/{filename}", h.DownloadTemplate)
}
