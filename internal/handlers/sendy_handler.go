package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"kemisemail/internal/models"
	"kemisemail/internal/services"
)

type SendyHandler struct {
	service   *services.TemplateService
	sendy     *services.SendyClient
	smtp      services.EmailSender
	validator *validator.Validate
}

// NewSendyHandler wires the campaign submission endpoints. smtp may be nil;
// test sends then go through Sendy's test_email path.
func NewSendyHandler(service *services.TemplateService, sendy *services.SendyClient, smtp services.EmailSender) *SendyHandler {
	return &SendyHandler{
		service:   service,
		sendy:     sendy,
		smtp:      smtp,
		validator: validator.New(),
	}
}

// SendToSendy submits an assembled campaign.
// @Tags Campaigns
// @Summary Submit a campaign to Sendy
// @Accept json
// @Produce json
// @Param body body models.SubmitCampaignRequest true "Campaign submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/send-to-sendy [post]
func (h *SendyHandler) SendToSendy(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.ListIDs == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Please select at least one mailing list")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	ack, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		log.Printf("Campaign submission failed: %v", err)
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Campaign submitted to Sendy",
		"response": ack,
	})
}

// GetSendyLists fetches the brand's mailing lists.
// @Tags Campaigns
// @Summary List Sendy mailing lists
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/get-sendy-lists [get]
func (h *SendyHandler) GetSendyLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.sendy.GetLists(r.Context())
	if err != nil {
		log.Printf("Failed to fetch Sendy lists: %v", err)
		writeJSONErrorResponse(w, http.StatusBadGateway, "lists_unavailable", err.Error())
		return
	}
	if lists == nil {
		lists = []services.SendyList{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lists":   lists,
	})
}

// VerifyEmailConfig reports the campaign platform configuration and
// reachability for diagnostics.
// @Tags Campaigns
// @Summary Verify Sendy configuration
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/verify-email-config [get]
func (h *SendyHandler) VerifyEmailConfig(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"sendy_url":      h.sendy.BaseURL(),
		"api_key_masked": h.sendy.MaskedKey(),
		"from_name":      h.sendy.FromName(),
		"from_email":     h.sendy.FromEmail(),
		"reply_to":       h.sendy.ReplyTo(),
		"brand_id":       h.sendy.BrandID(),
	}

	status, err := h.sendy.Ping(r.Context())
	if err != nil {
		info["sendy_accessible"] = false
		info["sendy_error"] = err.Error()
	} else {
		info["sendy_accessible"] = status == http.StatusOK
		info["sendy_status"] = status
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  info,
	})
}

// SendTestEmail delivers the rendered preview to a single address, over SMTP
// when configured, otherwise as a Sendy test campaign.
// @Tags Campaigns
// @Summary Send a test email
// @Accept json
// @Produce json
// @Param body body models.TestEmailRequest true "Test email request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/send-test-email [post]
func (h *SendyHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req models.TestEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Invalid email address format")
		return
	}

	if h.smtp != nil {
		subject := req.Subject
		if subject == "" {
			subject = "Test Email"
		}
		if err := h.smtp.Send(req.Email, "[TEST] "+subject, req.HTMLTemplate, req.Body); err != nil {
			log.Printf("SMTP test send failed: %v", err)
			writeJSONErrorResponse(w, http.StatusBadGateway, "test_send_failed", err.Error())
			return
		}
		writeJSONMessage(w, http.StatusOK, "Test email sent to "+req.Email)
		return
	}

	ack, err := h.service.SendTestCampaign(r.Context(), &req)
	if err != nil {
		log.Printf("Test campaign failed: %v", err)
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Test email sent to " + req.Email,
		"response": ack,
	})
}
