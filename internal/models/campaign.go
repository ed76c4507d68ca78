// internal/models/campaign.go
package models

import "time"

type SendOption string

const (
	SendOptionDraft    SendOption = "draft"
	SendOptionSendNow  SendOption = "send_now"
	SendOptionSchedule SendOption = "schedule"
)

// CampaignPayload is the assembled campaign sent to the Sendy create endpoint.
// Constructed once, sent once; there is no retry state.
type CampaignPayload struct {
	Title       string
	Subject     string
	HTMLText    string
	PlainText   string
	ListIDs     string
	SendOption  SendOption
	ScheduledAt time.Time
	// TestEmail, when set, sends the campaign only to that address.
	TestEmail string
}

// CampaignTitle derives the remote campaign name from the subject line and
// the calendar date. Two campaigns created on the same day share a title;
// Sendy still records them as separate campaigns.
func CampaignTitle(subject string, now time.Time) string {
	// Truncate by rune; subjects routinely carry emoji.
	if r := []rune(subject); len(r) > 30 {
		subject = string(r[:30])
	}
	return subject + " - " + now.Format("01-02-2006")
}

type SubmitCampaignRequest struct {
	Content           *EmailContent `json:"content" validate:"required"`
	HTMLTemplate      string        `json:"html_template" validate:"required"`
	Filename          string        `json:"filename"`
	ListIDs           string        `json:"list_ids" validate:"required"`
	SendOption        string        `json:"send_option" validate:"omitempty,oneof=draft send_now schedule"`
	ScheduledDatetime int64         `json:"scheduled_datetime"`
}

type RegeneratePreviewRequest struct {
	Content   *EmailContent `json:"content" validate:"required"`
	ImageURLs []string      `json:"image_urls"`
}

type TestEmailRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	HTMLTemplate string `json:"html_template"`
}
