package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
)

// Client fetches quotes from the configured provider. Each call is a single
// request with a timeout; failures surface immediately, there is no retry.
type Client struct {
	BaseURL    string
	ApiKey     string
	HttpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		ApiKey:  apiKey,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type providerQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	PreviousClose float64 `json:"previousClose"`
}

func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s&apikey=%s",
		c.BaseURL, url.QueryEscape(symbol), url.QueryEscape(c.ApiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote provider returned status %d for %s", resp.StatusCode, symbol)
	}

	var raw providerQuote
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("quote provider sent an unreadable response: %w", err)
	}

	return &models.Quote{
		Symbol:        symbol,
		Price:         raw.Price,
		Currency:      raw.Currency,
		Change:        raw.Change,
		ChangePercent: raw.ChangePercent,
		PreviousClose: raw.PreviousClose,
		FetchedAt:     time.Now(),
	}, nil
}
