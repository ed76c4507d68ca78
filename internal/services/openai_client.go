package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kemisemail/internal/config"
	appErrors "kemisemail/internal/errors"
	"kemisemail/internal/metrics"
	"kemisemail/internal/models"
)

const contentSystemPrompt = `You are a professional email marketing expert. Create SHORT, CLEAN email content that:
- Uses professional, engaging marketing language
- Uses clear, friendly greetings like "Hi" or "Hello"
- Is structured with headlines, subheadlines, and bullet points for clarity
- Use single space after periods, no double spacing
- Include 2-3 relevant emojis maximum
- Focus on the specific business/promotion mentioned
- Has a clear call-to-action
- No long paragraphs or run-on sentences

Return the content in JSON format with these fields:
{
    "subject_line": "Email subject line",
    "hero_title": "Main headline (max 3 words)",
    "greeting": "Personal greeting with [Name,fallback=there]",
    "headline": "Main value proposition headline (compelling benefit)",
    "subheadline": "Supporting subheadline that expands on the value",
    "bullet_points": ["Key benefit 1", "Key benefit 2", "Key benefit 3"],
    "main_content": "Closing paragraph - 2-3 short lines maximum, separated by &nbsp;",
    "cta_text": "Call to action button text",
    "cta_url": "Call to action URL",
    "urgency_text": "Urgency message if applicable",
    "offer_details": "Unique action-focused summary for CTA box (e.g., 'Click below to claim your 20% discount before Friday!') - must be different from main_content"
}`

const imagePromptSystemPrompt = `You are an expert at creating image prompts for email marketing. Create a detailed, specific prompt for an image model that will generate a professional, engaging image for an email campaign.

The image should:
- Be landscape orientation
- Be photo-realistic
- Have bright, professional lighting
- Include Bahamian elements when relevant
- Be suitable for email marketing
- Have no text overlay
- Be visually appealing and modern

Format your response as a detailed image description that the image model can understand.`

const defaultImagePrompt = "Professional email marketing image with modern design, bright lighting, and engaging visual elements"

// OpenAIClient drafts campaign copy and images through the OpenAI REST API.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	chatModel  string
	imageModel string

	httpClient     *http.Client
	downloadClient *http.Client
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:         cfg.OpenAIAPIKey,
		baseURL:        strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		chatModel:      cfg.ChatModel,
		imageModel:     cfg.ImageModel,
		httpClient:     &http.Client{Timeout: cfg.GenerationTimeout},
		downloadClient: &http.Client{Timeout: cfg.DownloadTimeout},
	}
}

func (c *OpenAIClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
		c.downloadClient = hc
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateEmailContent drafts the campaign copy. One call, no fallback model,
// no canned content; failures surface as typed errors.
func (c *OpenAIClient) GenerateEmailContent(ctx context.Context, prompt string) (*models.EmailContent, error) {
	text, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: contentSystemPrompt},
		{Role: "user", Content: "Create an email campaign for: " + prompt},
	}, 0.7)
	if err != nil {
		return nil, err
	}

	var content models.EmailContent
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &content); err != nil {
		return nil, appErrors.NewEmptyResponse("openai chat", fmt.Sprintf("response is not valid content JSON: %v", err))
	}
	if content.SubjectLine == "" {
		return nil, appErrors.NewEmptyResponse("openai chat", "response missing subject_line")
	}
	return &content, nil
}

// GenerateImagePrompt turns drafted content into an image prompt. A failed
// refinement falls back to a generic prompt rather than failing the pipeline.
func (c *OpenAIClient) GenerateImagePrompt(ctx context.Context, content *models.EmailContent) string {
	encoded, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return defaultImagePrompt
	}
	text, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: imagePromptSystemPrompt},
		{Role: "user", Content: "Create an image prompt for this email content: " + string(encoded)},
	}, 0.8)
	if err != nil || strings.TrimSpace(text) == "" {
		return defaultImagePrompt
	}
	return text
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage requests a single 1024x1024 image and returns its URL.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(imageRequest{
		Model:   c.imageModel,
		Prompt:  prompt,
		Size:    "1024x1024",
		Quality: "standard",
		N:       1,
	})

	respBody, err := c.post(ctx, "/v1/images/generations", body)
	if err != nil {
		return "", err
	}

	var parsed imageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", appErrors.NewEmptyResponse("openai images", fmt.Sprintf("invalid json: %v", err))
	}
	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", appErrors.NewEmptyResponse("openai images", "no image URL returned")
	}
	return parsed.Data[0].URL, nil
}

// DownloadImage fetches the generated image bytes from the returned URL.
func (c *OpenAIClient) DownloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, appErrors.NewGenerationUnavailable("image download", 0, "", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, appErrors.NewGenerationUnavailable("image download", 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, appErrors.NewGenerationUnavailable("image download", resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.NewGenerationUnavailable("image download", 0, "", err)
	}
	if len(data) == 0 {
		return nil, appErrors.NewEmptyResponse("image download", "empty image body")
	}
	return data, nil
}

func (c *OpenAIClient) chat(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: temperature,
	})

	respBody, err := c.post(ctx, "/v1/chat/completions", body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", appErrors.NewEmptyResponse("openai chat", fmt.Sprintf("invalid json: %v", err))
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", appErrors.NewEmptyResponse("openai chat", "no choices returned")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.NewGenerationUnavailable("openai", 0, "", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordExternalCallLatency(path, "error", time.Since(start))
		return nil, appErrors.NewGenerationUnavailable("openai", 0, "", err)
	}
	defer resp.Body.Close()
	metrics.RecordExternalCallLatency(path, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.NewGenerationUnavailable("openai", resp.StatusCode, "", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.NewGenerationUnavailable("openai", resp.StatusCode, strings.TrimSpace(string(respBody)), nil)
	}
	return respBody, nil
}

// stripCodeFence removes a ```json ... ``` wrapper the chat model sometimes
// adds around the content JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
