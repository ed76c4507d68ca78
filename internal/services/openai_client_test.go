package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"kemisemail/internal/config"
	appErrors "kemisemail/internal/errors"
	"kemisemail/internal/models"
)

func newTestOpenAIClient(baseURL string) *OpenAIClient {
	return NewOpenAIClient(&config.Config{
		OpenAIAPIKey:      "test-key",
		OpenAIBaseURL:     baseURL,
		ChatModel:         "gpt-4",
		ImageModel:        "dall-e-3",
		GenerationTimeout: 5 * time.Second,
		DownloadTimeout:   5 * time.Second,
	})
}

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	}
	out, _ := json.Marshal(reply)
	return string(out)
}

func TestGenerateEmailContent(t *testing.T) {
	draft := `{"subject_line":"Summer Sale 🌴","hero_title":"Big Savings","greeting":"Hi [Name,fallback=there]","headline":"Save 20% this week","bullet_points":["Fast shipping","Easy returns"],"main_content":"Shop now.","cta_text":"SHOP NOW","cta_url":"https://example.com"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		assert.InDelta(t, 0.7, req.Temperature, 0.001)

		w.Write([]byte(chatReply(draft)))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	content, err := client.GenerateEmailContent(context.Background(), "summer sale for a beach shop")

	assert.NoError(t, err)
	assert.Equal(t, "Summer Sale 🌴", content.SubjectLine)
	assert.Equal(t, "SHOP NOW", content.CTAText)
	assert.Len(t, content.BulletPoints, 2)
}

func TestGenerateEmailContentStripsCodeFence(t *testing.T) {
	draft := "```json\n{\"subject_line\":\"Fenced\"}\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(draft)))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	content, err := client.GenerateEmailContent(context.Background(), "x")

	assert.NoError(t, err)
	assert.Equal(t, "Fenced", content.SubjectLine)
}

func TestGenerateEmailContentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	_, err := client.GenerateEmailContent(context.Background(), "x")

	var unavailable *appErrors.ErrGenerationUnavailable
	assert.True(t, errors.As(err, &unavailable))
	assert.Equal(t, http.StatusInternalServerError, unavailable.Status)
}

func TestGenerateEmailContentNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	_, err := client.GenerateEmailContent(context.Background(), "x")

	var empty *appErrors.ErrEmptyResponse
	assert.True(t, errors.As(err, &empty))
}

func TestGenerateEmailContentInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("Sorry, I cannot help with that.")))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	_, err := client.GenerateEmailContent(context.Background(), "x")

	var empty *appErrors.ErrEmptyResponse
	assert.True(t, errors.As(err, &empty))
}

func TestGenerateImagePromptFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	prompt := client.GenerateImagePrompt(context.Background(), &models.EmailContent{SubjectLine: "Sale"})
	assert.Equal(t, defaultImagePrompt, prompt)
}

func TestGenerateImagePromptUsesRefinement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.8, req.Temperature, 0.001)
		w.Write([]byte(chatReply("A sunlit beach storefront, landscape orientation")))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	prompt := client.GenerateImagePrompt(context.Background(), &models.EmailContent{SubjectLine: "Sale"})
	assert.Equal(t, "A sunlit beach storefront, landscape orientation", prompt)
}

func TestGenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)

		var req imageRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dall-e-3", req.Model)
		assert.Equal(t, "1024x1024", req.Size)
		assert.Equal(t, 1, req.N)

		w.Write([]byte(`{"data":[{"url":"https://cdn.example.com/img.png"}]}`))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	url, err := client.GenerateImage(context.Background(), "a beach")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", url)
}

func TestGenerateImageEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	_, err := client.GenerateImage(context.Background(), "a beach")

	var empty *appErrors.ErrEmptyResponse
	assert.True(t, errors.As(err, &empty))
}

func TestDownloadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	data, err := client.DownloadImage(context.Background(), server.URL+"/img.png")

	assert.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestDownloadImageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestOpenAIClient(server.URL)
	_, err := client.DownloadImage(context.Background(), server.URL+"/img.png")

	var unavailable *appErrors.ErrGenerationUnavailable
	assert.True(t, errors.As(err, &unavailable))
	assert.Equal(t, http.StatusNotFound, unavailable.Status)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
