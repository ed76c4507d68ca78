package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"kemisemail/internal/models"
	"kemisemail/internal/services"
)

const (
	defaultImageWidth   = 560
	defaultImageQuality = 70
)

type GenerateHandler struct {
	service   *services.TemplateService
	validator *validator.Validate
}

func NewGenerateHandler(service *services.TemplateService) *GenerateHandler {
	return &GenerateHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GenerateTemplate runs the full pipeline for one brief.
// @Tags Templates
// @Summary Generate an email template
// @Accept multipart/form-data
// @Produce json
// @Param prompt formData string true "Campaign brief"
// @Param imageOption formData string false "Image mode: ai, upload or none"
// @Param ctaLink formData string false "Custom call-to-action URL"
// @Param generatePreheader formData string false "yes or no"
// @Param width formData int false "Target image width (200-800)"
// @Param quality formData int false "JPEG quality (20-90)"
// @Param uploadedImage formData file false "Uploaded image"
// @Param uploadedImage2 formData file false "Optional second uploaded image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/generate [post]
func (h *GenerateHandler) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		// The form may also arrive urlencoded with data-URI images.
		if err := r.ParseForm(); err != nil {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
			return
		}
	}

	prompt := strings.TrimSpace(r.FormValue("prompt"))
	if prompt == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "prompt is required")
		return
	}

	mode, ok := models.ParseImageMode(r.FormValue("imageOption"))
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "imageOption must be ai, upload or none")
		return
	}

	brief := &models.CampaignBrief{
		Prompt:            prompt,
		ImageMode:         mode,
		CTAURL:            strings.TrimSpace(r.FormValue("ctaLink")),
		GeneratePreheader: r.FormValue("generatePreheader") != "no",
		Width:             formInt(r, "width", defaultImageWidth),
		Quality:           formInt(r, "quality", defaultImageQuality),
	}

	if err := h.validator.Struct(brief); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var uploads [][]byte
	if mode == models.ImageModeUpload {
		uploads = collectUploads(r)
		if len(uploads) == 0 {
			writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No image uploaded")
			return
		}
	}

	result, err := h.service.Generate(r.Context(), brief, uploads)
	if err != nil {
		log.Printf("Template generation failed: %v", err)
		writePipelineError(w, err)
		return
	}

	firstURL := ""
	if len(result.ImageURLs) > 0 {
		firstURL = result.ImageURLs[0]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"content":       result.Content,
		"image_prompt":  result.ImagePrompt,
		"image_data":    firstURL,
		"image_urls":    result.ImageURLs,
		"image_source":  result.ImageSource,
		"html_template": result.HTML,
		"filename":      result.Filename,
		"template_size": result.TemplateSize,
	})
}

// RegeneratePreview re-renders the HTML from edited content.
// @Tags Templates
// @Summary Regenerate the preview HTML
// @Accept json
// @Produce json
// @Param body body models.RegeneratePreviewRequest true "Edited content and image URLs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/regenerate-preview [post]
func (h *GenerateHandler) RegeneratePreview(w http.ResponseWriter, r *http.Request) {
	var req models.RegeneratePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	html, err := h.service.RegenerateHTML(req.Content, req.ImageURLs)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"html_template": html,
	})
}

func formInt(r *http.Request, key string, defaultValue int) int {
	v := r.FormValue(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// collectUploads gathers uploaded images from multipart file parts or, as the
// form historically sent them, base64 data-URI form values.
func collectUploads(r *http.Request) [][]byte {
	var uploads [][]byte
	for _, key := range []string{"uploadedImage", "uploadedImage2"} {
		if r.MultipartForm != nil {
			if fhs := r.MultipartForm.File[key]; len(fhs) > 0 {
				file, err := fhs[0].Open()
				if err != nil {
					log.Printf("Failed to open upload %s: %v", key, err)
					continue
				}
				data, err := io.ReadAll(file)
				file.Close()
				if err == nil && len(data) > 0 {
					uploads = append(uploads, data)
				}
				continue
			}
		}
		if v := r.FormValue(key); v != "" {
			if data := decodeDataURI(v); data != nil {
				uploads = append(uploads, data)
			}
		}
	}
	return uploads
}

func decodeDataURI(v string) []byte {
	if !strings.HasPrefix(v, "data:image") {
		return nil
	}
	idx := strings.Index(v, ",")
	if idx < 0 {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(v[idx+1:])
	if err != nil {
		return nil
	}
	return data
}
