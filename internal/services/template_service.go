package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	appErrors "kemisemail/internal/errors"
	"kemisemail/internal/metrics"
	"kemisemail/internal/models"
)

const (
	// Rendered HTML over this after scrubbing is rejected for preview.
	maxPreviewTemplateSize = 800 * 1024
	// Sendy submissions are bounded a little higher.
	maxSubmitTemplateSize = 1024 * 1024
)

// ContentDrafter produces campaign copy and image prompts.
type ContentDrafter interface {
	GenerateEmailContent(ctx context.Context, prompt string) (*models.EmailContent, error)
	GenerateImagePrompt(ctx context.Context, content *models.EmailContent) string
}

// ImageDrafter produces an illustrative image for a campaign.
type ImageDrafter interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	DownloadImage(ctx context.Context, url string) ([]byte, error)
}

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
var spacePattern = regexp.MustCompile(`\s+`)

// TemplateService runs the generation pipeline: draft content, draft or
// optimize an image, host it, render the template, and submit campaigns.
// Fully synchronous and request-scoped; the only shared state is read-only
// configuration.
type TemplateService struct {
	drafter      ContentDrafter
	imageDrafter ImageDrafter
	optimizer    *ImageOptimizer
	store        ImageStore
	builder      *TemplateBuilder
	sendy        *SendyClient
	templateDir  string
}

func NewTemplateService(drafter ContentDrafter, imageDrafter ImageDrafter, optimizer *ImageOptimizer, store ImageStore, builder *TemplateBuilder, sendy *SendyClient, templateDir string) *TemplateService {
	return &TemplateService{
		drafter:      drafter,
		imageDrafter: imageDrafter,
		optimizer:    optimizer,
		store:        store,
		builder:      builder,
		sendy:        sendy,
		templateDir:  templateDir,
	}
}

type GenerateResult struct {
	Content      *models.EmailContent `json:"content"`
	ImagePrompt  string               `json:"image_prompt,omitempty"`
	ImageURLs    []string             `json:"image_urls"`
	ImageSource  string               `json:"image_source"`
	HTML         string               `json:"html_template"`
	Filename     string               `json:"filename,omitempty"`
	TemplateSize int                  `json:"template_size"`
}

// Generate runs one pipeline pass for a brief. Uploads carries the raw bytes
// of user-supplied images when the brief's mode is upload. A content draft
// failure stops the pipeline before any image or submission work.
func (s *TemplateService) Generate(ctx context.Context, brief *models.CampaignBrief, uploads [][]byte) (*GenerateResult, error) {
	content, err := s.drafter.GenerateEmailContent(ctx, brief.Prompt)
	if err != nil {
		metrics.IncrementContentDraft("failed")
		return nil, err
	}
	metrics.IncrementContentDraft("success")

	if brief.CTAURL != "" {
		content.CTAURL = brief.CTAURL
	}
	if !brief.GeneratePreheader {
		content.Preheader = ""
	}

	var (
		assets      []*models.ImageAsset
		imagePrompt string
		imageSource string
	)

	switch brief.ImageMode {
	case models.ImageModeGenerate:
		imagePrompt = s.drafter.GenerateImagePrompt(ctx, content)
		asset, err := s.draftImage(ctx, imagePrompt, brief)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
		imageSource = "AI Generated"
	case models.ImageModeUpload:
		for _, data := range uploads {
			asset, err := s.optimizer.Optimize(data, brief.Width, brief.Quality)
			if err != nil {
				return nil, err
			}
			asset.Source = models.ImageSourceUploaded
			assets = append(assets, asset)
		}
		imageSource = "Uploaded"
		if len(assets) > 1 {
			imageSource = fmt.Sprintf("Uploaded (%d images)", len(assets))
		}
	case models.ImageModeNone:
		imageSource = "None"
	}

	slug := campaignSlug(content.SubjectLine)
	stamp := time.Now().Format("20060102_150405")

	var imageURLs []string
	for i, asset := range assets {
		name := fmt.Sprintf("%s_%s.jpg", slug, stamp)
		if len(assets) > 1 {
			name = fmt.Sprintf("%s_%s_%d.jpg", slug, stamp, i+1)
		}
		url, err := s.store.Save(ctx, name, "image/jpeg", asset.Data)
		if err != nil {
			// Hosting failure is not fatal; the template falls back to
			// the placeholder block.
			log.Printf("Failed to store image %s: %v", name, err)
			continue
		}
		asset.URL = url
		imageURLs = append(imageURLs, url)
	}

	html := s.builder.BuildHTML(content, imageURLs)
	html, err = s.boundTemplate(html, maxPreviewTemplateSize)
	if err != nil {
		return nil, err
	}

	filename := s.saveTemplate(slug, stamp, html)

	return &GenerateResult{
		Content:      content,
		ImagePrompt:  imagePrompt,
		ImageURLs:    imageURLs,
		ImageSource:  imageSource,
		HTML:         html,
		Filename:     filename,
		TemplateSize: len(html),
	}, nil
}

// RegenerateHTML re-renders the template from edited content and previously
// hosted image URLs.
func (s *TemplateService) RegenerateHTML(content *models.EmailContent, imageURLs []string) (string, error) {
	html := s.builder.BuildHTML(content, imageURLs)
	return s.boundTemplate(html, maxPreviewTemplateSize)
}

// Submit assembles the campaign payload and posts it to Sendy. Returns the
// remote acknowledgment text.
func (s *TemplateService) Submit(ctx context.Context, req *models.SubmitCampaignRequest) (string, error) {
	html, err := s.boundTemplate(req.HTMLTemplate, maxSubmitTemplateSize)
	if err != nil {
		return "", err
	}

	sendOption := models.SendOption(req.SendOption)
	if sendOption == "" {
		sendOption = models.SendOptionDraft
	}

	payload := &models.CampaignPayload{
		Title:      models.CampaignTitle(req.Content.SubjectLine, time.Now()),
		Subject:    req.Content.SubjectLine,
		HTMLText:   html,
		PlainText:  s.builder.BuildPlainText(req.Content),
		ListIDs:    req.ListIDs,
		SendOption: sendOption,
	}
	if sendOption == models.SendOptionSchedule && req.ScheduledDatetime > 0 {
		payload.ScheduledAt = time.Unix(req.ScheduledDatetime, 0)
	}

	ack, err := s.sendy.CreateCampaign(ctx, payload)
	if err != nil {
		metrics.IncrementCampaignSubmit("failed")
		return "", err
	}
	metrics.IncrementCampaignSubmit("success")
	return ack, nil
}

// SendTestCampaign creates a campaign delivered only to one address.
func (s *TemplateService) SendTestCampaign(ctx context.Context, req *models.TestEmailRequest) (string, error) {
	subject := req.Subject
	if subject == "" {
		subject = "Test Email from " + brandName
	}
	body := req.Body
	if body == "" {
		body = "This is a test email to verify email delivery."
	}

	html := req.HTMLTemplate
	var plain string
	if html == "" {
		html, plain = s.builder.BuildTestEmail(subject, body)
	} else {
		plain = subject + "\n\n" + body
	}

	now := time.Now()
	payload := &models.CampaignPayload{
		Title:     "TEST - " + subject + " - " + now.Format("01-02-2006 15:04"),
		Subject:   "[TEST] " + subject,
		HTMLText:  html,
		PlainText: plain,
		TestEmail: req.Email,
	}
	return s.sendy.CreateCampaign(ctx, payload)
}

func (s *TemplateService) draftImage(ctx context.Context, prompt string, brief *models.CampaignBrief) (*models.ImageAsset, error) {
	url, err := s.imageDrafter.GenerateImage(ctx, prompt)
	if err != nil {
		metrics.IncrementImageDraft("failed")
		return nil, err
	}
	data, err := s.imageDrafter.DownloadImage(ctx, url)
	if err != nil {
		metrics.IncrementImageDraft("failed")
		return nil, err
	}
	asset, err := s.optimizer.Optimize(data, brief.Width, brief.Quality)
	if err != nil {
		metrics.IncrementImageDraft("failed")
		return nil, err
	}
	asset.Source = models.ImageSourceGenerated
	metrics.IncrementImageDraft("success")
	return asset, nil
}

// boundTemplate enforces the size budget, scrubbing inline base64 images
// before giving up.
func (s *TemplateService) boundTemplate(html string, limit int) (string, error) {
	if len(html) <= limit {
		return html, nil
	}
	log.Printf("Large template detected: %d bytes, scrubbing inline images", len(html))
	html = s.builder.ScrubInlineImages(html)
	if len(html) > limit {
		return "", appErrors.NewTemplateTooLarge(len(html), limit)
	}
	return html, nil
}

// saveTemplate writes the rendered HTML under the template directory so it
// can be downloaded later. Failure to save is logged, not fatal.
func (s *TemplateService) saveTemplate(slug, stamp, html string) string {
	if s.templateDir == "" {
		return ""
	}
	if err := os.MkdirAll(s.templateDir, 0o755); err != nil {
		log.Printf("Failed to create template dir: %v", err)
		return ""
	}
	name := fmt.Sprintf("%s_%s.html", slug, stamp)
	if err := os.WriteFile(filepath.Join(s.templateDir, name), []byte(html), 0o644); err != nil {
		log.Printf("Failed to save template %s: %v", name, err)
		return ""
	}
	return name
}

// campaignSlug turns a subject line into a filesystem-safe name.
func campaignSlug(subject string) string {
	slug := slugPattern.ReplaceAllString(subject, "")
	slug = spacePattern.ReplaceAllString(strings.TrimSpace(slug), "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	if slug == "" {
		slug = "campaign"
	}
	return slug
}
