package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"kemisemail/internal/models"
)

func sampleContent() *models.EmailContent {
	return &models.EmailContent{
		SubjectLine:  "Summer Sale",
		HeroTitle:    "Big Sale",
		Greeting:     "Hi [Name,fallback=there],",
		Headline:     "Save 20% this week",
		Subheadline:  "Everything in store",
		BulletPoints: []string{"Fast shipping", "Easy returns"},
		MainContent:  "Shop before Friday.",
		CTAText:      "SHOP NOW",
		CTAURL:       "https://example.com/shop",
		UrgencyText:  "Ends Friday!",
		OfferDetails: "Click below to claim 20% off before Friday!",
	}
}

func TestBuildHTMLIncludesContent(t *testing.T) {
	builder := NewTemplateBuilder()
	html := builder.BuildHTML(sampleContent(), []string{"https://cdn.example.com/hero.jpg"})

	assert.Contains(t, html, "<title>Summer Sale</title>")
	assert.Contains(t, html, "Big Sale")
	assert.Contains(t, html, "Hi [Name,fallback=there],")
	assert.Contains(t, html, "Save 20% this week")
	assert.Contains(t, html, "Fast shipping")
	assert.Contains(t, html, "Shop before Friday.")
	assert.Contains(t, html, brandAddress)
}

func TestBuildHTMLRendersCTAOnlyWithURL(t *testing.T) {
	builder := NewTemplateBuilder()

	withURL := builder.BuildHTML(sampleContent(), nil)
	assert.Contains(t, withURL, `href="https://example.com/shop"`)
	assert.Contains(t, withURL, "SHOP NOW")
	assert.Contains(t, withURL, "Ends Friday!")

	content := sampleContent()
	content.CTAURL = ""
	withoutURL := builder.BuildHTML(content, nil)
	assert.NotContains(t, withoutURL, "SHOP NOW")
	assert.NotContains(t, withoutURL, "Click below to claim")
}

func TestBuildHTMLDefaultCTAText(t *testing.T) {
	builder := NewTemplateBuilder()
	content := sampleContent()
	content.CTAText = ""

	html := builder.BuildHTML(content, nil)
	assert.Contains(t, html, "LEARN MORE")
}

func TestBuildHTMLImagePlaceholderWhenNoImages(t *testing.T) {
	builder := NewTemplateBuilder()
	html := builder.BuildHTML(sampleContent(), nil)
	assert.Contains(t, html, "linear-gradient")
	assert.NotContains(t, html, "<img")
}

func TestBuildHTMLImagesLinkToCTA(t *testing.T) {
	builder := NewTemplateBuilder()
	html := builder.BuildHTML(sampleContent(), []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"})

	assert.Contains(t, html, `src="https://cdn.example.com/a.jpg"`)
	assert.Contains(t, html, `src="https://cdn.example.com/b.jpg"`)
	assert.Contains(t, html, `<a href="https://example.com/shop" target="_blank" style="text-decoration: none;"><img`)
	// Second image gets a spacer.
	assert.Contains(t, html, `<div style="height: 15px;"></div>`)
}

func TestBuildHTMLPreheader(t *testing.T) {
	builder := NewTemplateBuilder()

	content := sampleContent()
	content.Preheader = "Don't miss our summer deals"
	html := builder.BuildHTML(content, nil)
	assert.Contains(t, html, "Don't miss our summer deals")

	// Without an explicit preheader the main content stands in, truncated.
	content = sampleContent()
	content.Preheader = ""
	content.MainContent = strings.Repeat("x", 150)
	html = builder.BuildHTML(content, nil)
	assert.Contains(t, html, strings.Repeat("x", 97)+"...")
}

func TestPreheaderTruncatesByRune(t *testing.T) {
	builder := NewTemplateBuilder()

	// The 97th character lands on an emoji; truncation must not split its
	// UTF-8 bytes.
	content := sampleContent()
	content.Preheader = ""
	content.MainContent = strings.Repeat("a", 96) + strings.Repeat("🎉", 6)

	got := builder.preheader(content)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 96)+"🎉...", got)
}

func TestHeroColor(t *testing.T) {
	builder := NewTemplateBuilder()

	assert.Equal(t, colorSecondary, builder.heroColor("Big Sale"))
	assert.Equal(t, colorSecondary, builder.heroColor("Hot Deal"))
	assert.Equal(t, colorAccent, builder.heroColor("Flash Offer"))
	assert.Equal(t, colorPrimary, builder.heroColor("New Arrivals"))
	// "Flash Sale" matches sale first.
	assert.Equal(t, colorSecondary, builder.heroColor("Flash Sale"))
}

func TestBuildPlainTextStructure(t *testing.T) {
	builder := NewTemplateBuilder()
	plain := builder.BuildPlainText(sampleContent())

	lines := strings.Split(plain, "\n")
	assert.Equal(t, "View online version [weblink]", lines[0])
	assert.Contains(t, plain, "Big Sale")
	assert.Contains(t, plain, "Link: https://example.com/shop")
	assert.Contains(t, plain, "Ends Friday!")
	assert.Contains(t, plain, brandTagline)
}

func TestBuildTestEmail(t *testing.T) {
	builder := NewTemplateBuilder()
	html, plain := builder.BuildTestEmail("Hello", "Delivery check.")

	assert.Contains(t, html, "Test Email")
	assert.Contains(t, html, "Delivery check.")
	assert.Contains(t, plain, "Hello")
	assert.Contains(t, plain, "Delivery check.")
}

func TestScrubInlineImages(t *testing.T) {
	builder := NewTemplateBuilder()

	big := `<img src="data:image/png;base64,` + strings.Repeat("A", 2000) + `">`
	scrubbed := builder.ScrubInlineImages(big)
	assert.Contains(t, scrubbed, "PLACEHOLDER_IMAGE_REMOVED")
	assert.Less(t, len(scrubbed), len(big))

	// Short data URIs are left alone.
	small := `<img src="data:image/png;base64,AAAA">`
	assert.Equal(t, small, builder.ScrubInlineImages(small))
}
