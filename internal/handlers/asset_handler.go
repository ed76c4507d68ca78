package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// AssetHandler serves locally stored images and saved templates. Only used
// when S3 hosting is not configured (images) and for template downloads.
type AssetHandler struct {
	imageDir    string
	templateDir string
}

func NewAssetHandler(imageDir, templateDir string) *AssetHandler {
	return &AssetHandler{imageDir: imageDir, templateDir: templateDir}
}

// ServeImage serves a locally stored campaign image.
// @Tags Assets
// @Summary Serve a stored image
// @Produce image/jpeg
// @Param filename path string true "Image filename"
// @Success 200
// @Failure 404 {object} map[string]interface{}
// @Router /images/{filename} [get]
func (h *AssetHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	// basename guard against directory traversal
	name := filepath.Base(chi.URLParam(r, "filename"))
	path := filepath.Join(h.imageDir, name)
	if _, err := os.Stat(path); err != nil {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Image not found")
		return
	}
	http.ServeFile(w, r, path)
}

// DownloadTemplate returns a previously generated template file.
// @Tags Assets
// @Summary Download a saved template
// @Produce text/html
// @Param filename path string true "Template filename"
// @Success 200
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/download/{filename} [get]
func (h *AssetHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "filename"))
	path := filepath.Join(h.templateDir, name)
	if _, err := os.Stat(path); err != nil {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Template file not found")
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	http.ServeFile(w, r, path)
}
