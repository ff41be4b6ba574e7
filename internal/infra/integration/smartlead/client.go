package smartlead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.smartlead.ai/v1"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateCampaign: envia o payload do caller direto pro Smartlead, sem
// validar campos da plataforma. A resposta volta como veio.
func (c *Client) CreateCampaign(ctx context.Context, campaignData map[string]any) (map[string]any, error) {
	url := fmt.Sprintf("%s/campaigns", c.baseURL)
	return c.postJSON(ctx, url, campaignData)
}

// AddLeads adiciona um lote de leads numa campanha existente. O Smartlead
// espera a lista embrulhada na chave "leads".
func (c *Client) AddLeads(ctx context.Context, campaignID string, leads []map[string]any) (map[string]any, error) {
	url := fmt.Sprintf("%s/campaigns/%s/leads", c.baseURL, campaignID)
	return c.postJSON(ctx, url, map[string]any{"leads": leads})
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) (map[string]any, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request smartlead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode smartlead: %w", err)
	}

	return response, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
