// internal/models/content.go
package models

// EmailContent is the drafted campaign copy. Field names match the JSON the
// chat model is instructed to return.
type EmailContent struct {
	SubjectLine  string   `json:"subject_line" validate:"required"`
	HeroTitle    string   `json:"hero_title"`
	Greeting     string   `json:"greeting"`
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline"`
	BulletPoints []string `json:"bullet_points"`
	MainContent  string   `json:"main_content"`
	CTAText      string   `json:"cta_text"`
	CTAURL       string   `json:"cta_url"`
	UrgencyText  string   `json:"urgency_text,omitempty"`
	OfferDetails string   `json:"offer_details,omitempty"`
	Preheader    string   `json:"preheader,omitempty"`
}
