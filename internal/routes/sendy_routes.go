// internal/routes/sendy_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"

	"kemisemail/internal/handlers"
	"kemisemail/internal/services"
)

func RegisterSendyRoutes(r chi.Router, service *services.TemplateService, sendy *services.SendyClient, smtp services.EmailSender) {
	h := handlers.NewSendyHandler(service, sendy, smtp)

	r.Post("/send-to-sendy", h.SendToSendy)
	r.Get("/get-sendy-lists", h.GetSendyLists)
	r.Get("/verify-email-config", h.VerifyEmailConfig)
	r.Post("/send-test-email", h.SendTestEmail)
}
