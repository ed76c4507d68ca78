// internal/models/brief.go
package models

import "strings"

type ImageMode string

const (
	ImageModeGenerate ImageMode = "generate"
	ImageModeUpload   ImageMode = "upload"
	ImageModeNone     ImageMode = "none"
)

// ParseImageMode maps the form's image option to a typed mode. "ai" is the
// legacy form value for generated images.
func ParseImageMode(s string) (ImageMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ai", "generate":
		return ImageModeGenerate, true
	case "upload":
		return ImageModeUpload, true
	case "none":
		return ImageModeNone, true
	}
	return "", false
}

// CampaignBrief is the user input driving one pipeline run. Width and quality
// are clamped again by the optimizer; the validator rejects out-of-range
// values before the pipeline starts.
type CampaignBrief struct {
	Prompt            string    `json:"prompt" validate:"required"`
	ImageMode         ImageMode `json:"image_mode" validate:"required,oneof=generate upload none"`
	CTAURL            string    `json:"cta_url" validate:"omitempty,url"`
	GeneratePreheader bool      `json:"generate_preheader"`
	Width             int       `json:"width" validate:"min=200,max=800"`
	Quality           int       `json:"quality" validate:"min=20,max=90"`
}
