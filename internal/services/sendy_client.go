package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"kemisemail/internal/config"
	appErrors "kemisemail/internal/errors"
	"kemisemail/internal/metrics"
	"kemisemail/internal/models"
)

type SendyList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SendyClient talks to a Sendy installation's plain-text API. One request per
// operation; no retries.
type SendyClient struct {
	baseURL        string
	apiKey         string
	brandID        string
	defaultListIDs string
	fromName       string
	fromEmail      string
	replyTo        string
	httpClient     *http.Client
}

func NewSendyClient(cfg *config.Config) *SendyClient {
	return &SendyClient{
		baseURL:        strings.TrimRight(cfg.SendyBaseURL, "/"),
		apiKey:         cfg.SendyAPIKey,
		brandID:        cfg.SendyBrandID,
		defaultListIDs: cfg.SendyListIDs,
		fromName:       cfg.FromName,
		fromEmail:      cfg.FromEmail,
		replyTo:        cfg.ReplyTo,
		httpClient:     &http.Client{Timeout: cfg.SubmitTimeout},
	}
}

func (c *SendyClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// CreateCampaign submits one form-encoded campaign to the create endpoint and
// interprets the plain-text acknowledgment. Any response that is not a
// recognized acknowledgment fails with the remote text attached.
func (c *SendyClient) CreateCampaign(ctx context.Context, payload *models.CampaignPayload) (string, error) {
	if c.apiKey == "" {
		return "", appErrors.NewSubmissionFailed(0, "", fmt.Errorf("SENDY_API_KEY is not set"))
	}

	listIDs := payload.ListIDs
	if listIDs == "" && payload.TestEmail == "" {
		listIDs = c.defaultListIDs
	}

	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("brand_id", c.brandID)
	form.Set("from_name", c.fromName)
	form.Set("from_email", c.fromEmail)
	form.Set("reply_to", c.replyTo)
	form.Set("title", payload.Title)
	form.Set("subject", payload.Subject)
	form.Set("html_text", payload.HTMLText)
	form.Set("plain_text", payload.PlainText)
	form.Set("list_ids", listIDs)

	switch payload.SendOption {
	case models.SendOptionSendNow:
		form.Set("send_campaign", "1")
	case models.SendOptionSchedule:
		// send_campaign=1 plus schedule_date_time means a scheduled send.
		form.Set("send_campaign", "1")
		form.Set("schedule_date_time", FormatScheduleTime(payload.ScheduledAt))
	default:
		form.Set("send_campaign", "0")
	}

	if payload.TestEmail != "" {
		form.Set("test_email", payload.TestEmail)
		form.Set("send_campaign", "0")
		form.Set("list_ids", "")
	}

	body, status, err := c.postForm(ctx, "/api/campaigns/create.php", form)
	if err != nil {
		return "", appErrors.NewSubmissionFailed(0, "", err)
	}
	if status < 200 || status >= 300 {
		return "", appErrors.NewSubmissionFailed(status, body, nil)
	}

	ack := strings.ToLower(strings.TrimSpace(body))
	if strings.Contains(ack, "campaign created") || strings.Contains(ack, "sending") {
		return strings.TrimSpace(body), nil
	}
	return "", appErrors.NewSubmissionFailed(status, strings.TrimSpace(body), nil)
}

// GetLists fetches the brand's mailing lists. Sendy answers with an object
// keyed by arbitrary names whose values carry id and name.
func (c *SendyClient) GetLists(ctx context.Context) ([]SendyList, error) {
	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("brand_id", c.brandID)
	form.Set("include_hidden", "no")

	body, status, err := c.postForm(ctx, "/api/lists/get-lists.php", form)
	if err != nil {
		return nil, fmt.Errorf("sendy get-lists failed: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("sendy get-lists failed: status=%d body=%s", status, strings.TrimSpace(body))
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &wrapper); err != nil {
		return nil, fmt.Errorf("sendy get-lists: invalid json: %w", err)
	}

	lists := make([]SendyList, 0, len(wrapper))
	for _, raw := range wrapper {
		var l SendyList
		if err := json.Unmarshal(raw, &l); err != nil {
			continue
		}
		if l.ID == "" || l.Name == "" {
			continue
		}
		lists = append(lists, l)
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].Name < lists[j].Name })
	return lists, nil
}

// Ping checks whether the Sendy installation is reachable.
func (c *SendyClient) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// MaskedKey returns the API key prefix for diagnostics output.
func (c *SendyClient) MaskedKey() string {
	if len(c.apiKey) <= 8 {
		return "not set"
	}
	return c.apiKey[:8] + "..."
}

func (c *SendyClient) FromName() string  { return c.fromName }
func (c *SendyClient) FromEmail() string { return c.fromEmail }
func (c *SendyClient) ReplyTo() string   { return c.replyTo }
func (c *SendyClient) BrandID() string   { return c.brandID }
func (c *SendyClient) BaseURL() string   { return c.baseURL }

func (c *SendyClient) postForm(ctx context.Context, path string, form url.Values) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "KemisEmail/1.0")
	req.Header.Set("Accept", "*/*")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordExternalCallLatency(path, "error", time.Since(start))
		return "", 0, err
	}
	defer resp.Body.Close()
	metrics.RecordExternalCallLatency(path, strconv.Itoa(resp.StatusCode), time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

// FormatScheduleTime renders a schedule time the way Sendy expects, e.g.
// "june 15, 2021 6:05pm". Minutes are rounded to the nearest 5-minute
// increment (a Sendy requirement), carrying into the hour on 60.
func FormatScheduleTime(t time.Time) string {
	minutes := t.Minute()
	rounded := ((minutes + 2) / 5) * 5
	t = t.Add(time.Duration(rounded-minutes) * time.Minute)
	return strings.ToLower(t.Format("January 2, 2006 3:04PM"))
}
