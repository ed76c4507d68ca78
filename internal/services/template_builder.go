package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"kemisemail/internal/models"
)

// Brand palette and links baked into every campaign.
const (
	colorPrimary   = "#00CED1" // turquoise
	colorSecondary = "#FF6B35" // orange
	colorAccent    = "#FFD700" // yellow
	colorText      = "#333333"
	fontFamily     = `arial, 'helvetica neue', helvetica, sans-serif`

	brandName     = "KemisEmail"
	brandTagline  = "KemisEmail – Delivering Local Deals and Offers Since 2005"
	brandSiteURL  = "https://start.kemis.net"
	brandSignupURL = "https://dzvs3n3sqle.typeform.com/to/JxCYlnLb"
	brandAddress  = "Nassau West, New Providence, The Bahamas"
)

var inlineImagePattern = regexp.MustCompile(`data:image/[^;]+;base64,[A-Za-z0-9+/=]{1000,}`)

// TemplateBuilder renders the email-safe HTML template and its plain-text
// variant from drafted content and hosted image URLs.
type TemplateBuilder struct{}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{}
}

// BuildHTML assembles the full campaign HTML. Images are referenced by their
// hosted URLs; the CTA appears only when the content carries a URL.
func (b *TemplateBuilder) BuildHTML(content *models.EmailContent, imageURLs []string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html dir="ltr" lang="en" xmlns="http://www.w3.org/1999/xhtml">
<head><meta charset="UTF-8"><meta content="width=device-width, initial-scale=1" name="viewport"><meta name="x-apple-disable-message-reformatting"><meta http-equiv="X-UA-Compatible" content="IE=edge"><meta content="telephone=no" name="format-detection">
<title>` + content.SubjectLine + `</title>
<style type="text/css">.adapt-img { width:100%!important; height:auto!important } @media only screen and (max-width:600px) { .es-content { width:100%!important } }</style>
</head>
<body style="width:100%;height:100%;-webkit-text-size-adjust:100%;-ms-text-size-adjust:100%;padding:0;Margin:0;background-color:#FAFAFA">
`)

	// Hidden preheader shown by inbox previews.
	sb.WriteString(`<p><span style="display:none !important;color:#ffffff;height:0;mso-hide:all;line-height:0;visibility:hidden;opacity:0;font-size:0px;width:0">` + b.preheader(content) + `</span></p>
`)

	sb.WriteString(`<table align="center" cellpadding="0" cellspacing="0" class="es-content" role="none" style="border-collapse:collapse;border-spacing:0px;background-color:#ffffff;width:600px" width="600">
`)

	// Header: brand name plus nav links.
	sb.WriteString(`<tr><td align="center" style="padding:20px;Margin:0">
<h1 style="Margin:0;font-family:` + fontFamily + `;font-size:24px;font-weight:bold;color:` + colorPrimary + `">` + brandName + `</h1>
<p style="Margin:5px 0 0 0;font-family:` + fontFamily + `;font-size:12px;color:#666666">
<a href="` + brandSiteURL + `" style="color:#666666">Home</a> &nbsp;|&nbsp; <a href="` + brandSiteURL + `/services" style="color:#666666">Services</a> &nbsp;|&nbsp; <a href="` + brandSiteURL + `/statistics" style="color:#666666">Statistics</a> &nbsp;|&nbsp; <a href="` + brandSiteURL + `/contact" style="color:#666666">Contact</a>
</p>
</td></tr>
`)

	// Hero title on a content-dependent accent color.
	if content.HeroTitle != "" {
		sb.WriteString(`<tr><td align="center" style="padding:10px 20px;Margin:0;background-color:` + b.heroColor(content.HeroTitle) + `">
<h1 style="Margin:10px 0;font-family:` + fontFamily + `;font-size:40px;font-weight:bold;color:#ffffff;text-transform:uppercase">` + content.HeroTitle + `</h1>
</td></tr>
`)
	}

	if content.Greeting != "" {
		sb.WriteString(`<tr><td align="center" style="padding:15px 20px 5px 20px;Margin:0">
<p style="Margin:0;font-family:` + fontFamily + `;font-size:18px;color:` + colorText + `">` + content.Greeting + `</p>
</td></tr>
`)
	}

	sb.WriteString(`<tr><td align="center" style="padding:15px 20px;Margin:0">` + b.imagesHTML(imageURLs, content.SubjectLine, content.CTAURL) + `</td></tr>
`)

	sb.WriteString(`<tr><td align="center" style="padding:0 20px;Margin:0">` + b.headlineHTML(content.Headline) + b.subheadlineHTML(content.Subheadline) + b.bulletPointsHTML(content.BulletPoints) + `</td></tr>
`)

	if content.MainContent != "" {
		sb.WriteString(`<tr><td align="center" style="padding:10px 30px;Margin:0">
<p style="Margin:0;font-family:` + fontFamily + `;line-height:24px;color:` + colorText + `;font-size:16px">` + content.MainContent + `</p>
</td></tr>
`)
	}

	sb.WriteString(b.ctaHTML(content))

	// Footer.
	sb.WriteString(`<tr><td align="center" style="padding:25px 20px;Margin:0;background-color:#FAFAFA">
<p style="Margin:0 0 10px 0;font-family:` + fontFamily + `;font-size:13px;color:#666666">` + brandTagline + `</p>
<p style="Margin:0 0 10px 0;font-family:` + fontFamily + `;font-size:12px;color:#999999">` + fmt.Sprintf("%d", time.Now().Year()) + ` &copy; Kemis Group of Companies Inc. All rights reserved.<br>` + brandAddress + `</p>
<p style="Margin:0;font-family:` + fontFamily + `;font-size:12px;color:#999999">
<a href="` + brandSignupURL + `" style="color:` + colorPrimary + `">Sign Up</a> &nbsp;|&nbsp; <a href="#" style="color:#999999">Privacy Policy</a> &nbsp;|&nbsp; <a href="#" style="color:#999999">Terms of Use</a>
</p>
<p style="Margin:10px 0 0 0;font-family:` + fontFamily + `;font-size:11px;color:#999999">You are receiving this because you signed up for our Deals and Offers list.<br><a href="[unsubscribe]" style="color:#999999">Click here to unsubscribe</a> if this is no longer of interest.</p>
</td></tr>
</table>
</body>
</html>`)

	return sb.String()
}

// BuildPlainText renders the structured plain-text variant of a campaign.
func (b *TemplateBuilder) BuildPlainText(content *models.EmailContent) string {
	parts := []string{
		"View online version [weblink]",
		"",
		brandName,
		"Home " + brandSiteURL + "\tServices " + brandSiteURL + "/services\tStatistics " + brandSiteURL + "/statistics\tContact " + brandSiteURL + "/contact",
		"Join Our List " + brandSignupURL,
		"",
		content.HeroTitle,
		content.Greeting,
		"",
		content.MainContent,
		"",
		content.CTAText,
	}
	if content.UrgencyText != "" {
		parts = append(parts, content.UrgencyText)
	}
	if content.OfferDetails != "" {
		parts = append(parts, content.OfferDetails)
	}
	parts = append(parts,
		"",
		content.CTAText,
		"Link: "+content.CTAURL,
		"",
		brandTagline,
		"",
		fmt.Sprintf("%d © Kemis Group of Companies Inc. All rights reserved.", time.Now().Year()),
		"",
		brandAddress,
		"",
		"Sign Up "+brandSignupURL,
		"Privacy Policy #",
		"Terms of Use #",
		"You are receiving this because you signed up for our Deals and Offers list.",
		"",
		"Click here to unsubscribe if this is no longer of interest.",
	)
	return strings.Join(parts, "\n")
}

// BuildTestEmail renders the minimal HTML and plain-text pair used for direct
// test sends.
func (b *TemplateBuilder) BuildTestEmail(subject, body string) (string, string) {
	now := time.Now().Format("2006-01-02 15:04:05")
	html := `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>` + subject + `</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: ` + colorPrimary + `;">🧪 Test Email</h2>
<p>` + body + `</p>
<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
<p style="font-size: 12px; color: #666;">This is a test email from ` + brandName + ` Template Generator.<br>Sent at: ` + now + `</p>
</div>
</body>
</html>`
	plain := subject + "\n\n" + body + "\n\n---\nThis is a test email from " + brandName + " Template Generator.\nSent at: " + now
	return html, plain
}

// ScrubInlineImages replaces large base64 image payloads with a placeholder.
// Hosted URLs are the normal path; this guards against oversized inline data
// slipping into a submission.
func (b *TemplateBuilder) ScrubInlineImages(html string) string {
	return inlineImagePattern.ReplaceAllString(html, "data:image/jpeg;base64,PLACEHOLDER_IMAGE_REMOVED")
}

func (b *TemplateBuilder) heroColor(heroTitle string) string {
	title := strings.ToLower(heroTitle)
	switch {
	case strings.Contains(title, "sale") || strings.Contains(title, "deal"):
		return colorSecondary
	case strings.Contains(title, "flash"):
		return colorAccent
	default:
		return colorPrimary
	}
}

func (b *TemplateBuilder) preheader(content *models.EmailContent) string {
	if content.Preheader != "" {
		return content.Preheader
	}
	text := content.MainContent
	// Rune-aware truncation so an emoji straddling the cut cannot leave
	// invalid UTF-8 in the preview span.
	if r := []rune(text); len(r) > 100 {
		text = string(r[:97]) + "..."
	}
	return text
}

// imagesHTML stacks the campaign images vertically, each linking to the CTA
// when one is present. With no images a gradient placeholder stands in.
func (b *TemplateBuilder) imagesHTML(imageURLs []string, altText, ctaURL string) string {
	if len(imageURLs) == 0 {
		placeholder := `<div style="display:block;font-size:24px;border:0px;border-radius:15px;width:560px;height:400px;background:linear-gradient(135deg, ` + colorPrimary + ` 0%, ` + colorAccent + ` 100%);color:white;font-weight:bold;text-align:center;line-height:400px">` + altText + `</div>`
		if ctaURL != "" {
			return `<a href="` + ctaURL + `" target="_blank" style="text-decoration: none;">` + placeholder + `</a>`
		}
		return placeholder
	}

	var parts []string
	for idx, src := range imageURLs {
		if src == "" {
			continue
		}
		spacing := ""
		if idx > 0 {
			spacing = `<div style="height: 15px;"></div>`
		}
		img := `<img alt="` + altText + `" class="adapt-img" src="` + src + `" style="display: block; font-size: 14px; border: 0px; outline: none; text-decoration: none; border-radius: 15px; width: 560px; height: auto;" title="` + altText + `" />`
		if ctaURL != "" {
			img = `<a href="` + ctaURL + `" target="_blank" style="text-decoration: none;">` + img + `</a>`
		}
		parts = append(parts, spacing+img)
	}
	return strings.Join(parts, "")
}

func (b *TemplateBuilder) headlineHTML(headline string) string {
	if headline == "" {
		return ""
	}
	return `<h2 style="Margin:0;font-family:` + fontFamily + `;line-height:32px;color:` + colorText + `;font-size:26px;font-weight:bold;text-align:center;padding-top:10px;padding-bottom:5px">` + headline + `</h2>`
}

func (b *TemplateBuilder) subheadlineHTML(subheadline string) string {
	if subheadline == "" {
		return ""
	}
	return `<h3 style="Margin:0;font-family:` + fontFamily + `;line-height:28px;color:#666666;font-size:20px;font-weight:normal;text-align:center;padding-top:5px;padding-bottom:15px">` + subheadline + `</h3>`
}

func (b *TemplateBuilder) bulletPointsHTML(bulletPoints []string) string {
	if len(bulletPoints) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<table cellpadding="0" cellspacing="0" role="presentation" style="border-collapse:collapse;border-spacing:0px;width:100%;margin:15px auto;max-width:500px">`)
	for _, bullet := range bulletPoints {
		if bullet == "" {
			continue
		}
		sb.WriteString(`<tr><td style="padding:8px 0;padding-left:30px;width:20px;vertical-align:top"><span style="color:` + colorPrimary + `;font-weight:bold;font-size:18px;line-height:24px">&bull;</span></td><td style="padding:8px 0;vertical-align:top"><p style="Margin:0;font-family:` + fontFamily + `;line-height:24px;color:` + colorText + `;font-size:16px;text-align:left">` + bullet + `</p></td></tr>`)
	}
	sb.WriteString(`</table>`)
	return sb.String()
}

// ctaHTML renders the offer box and CTA button. No URL, no CTA element.
func (b *TemplateBuilder) ctaHTML(content *models.EmailContent) string {
	if content.CTAURL == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<tr><td align="center" style="padding:20px;Margin:0">
<table cellpadding="0" cellspacing="0" role="presentation" style="border-collapse:collapse;border-spacing:0px;background-color:#F7FDFD;border-radius:10px;width:100%;max-width:520px"><tr><td align="center" style="padding:20px">`)
	if content.OfferDetails != "" {
		sb.WriteString(`<p style="Margin:0 0 15px 0;font-family:` + fontFamily + `;line-height:22px;color:` + colorText + `;font-size:15px">` + content.OfferDetails + `</p>`)
	}
	ctaText := content.CTAText
	if ctaText == "" {
		ctaText = "LEARN MORE"
	}
	sb.WriteString(`<a href="` + content.CTAURL + `" target="_blank" style="display:inline-block;background-color:` + colorSecondary + `;color:#ffffff;font-family:` + fontFamily + `;font-size:18px;font-weight:bold;text-decoration:none;padding:12px 35px;border-radius:30px">` + ctaText + `</a>`)
	if content.UrgencyText != "" {
		sb.WriteString(`<p style="Margin:15px 0 0 0;font-family:` + fontFamily + `;color:` + colorSecondary + `;font-size:14px;font-weight:bold">` + content.UrgencyText + `</p>`)
	}
	sb.WriteString(`</td></tr></table>
</td></tr>
`)
	return sb.String()
}
