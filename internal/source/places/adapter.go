package places

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atif128873806/lead-intelligence-platfor/internal/config"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

const (
	SourceName = "places"

	searchPath = "/maps/search-v3"
)

// Adapter implements the Source interface for the hosted places-search API
type Adapter struct {
	client  *resty.Client
	baseURL string
}

// NewAdapter creates a new places adapter
func NewAdapter(cfg *config.PlacesConfig) *Adapter {
	cfg.ResolveEnvVars()

	client := resty.New()
	client.SetHeader("X-API-KEY", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &Adapter{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// Name returns the stable identifier for this source
func (a *Adapter) Name() string {
	return SourceName
}

// searchResponse mirrors the provider envelope. Result sets arrive as a
// list of lists, one inner list per submitted query.
type searchResponse struct {
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// placeResult carries both field-name generations of the provider API;
// mapping applies the older name when the newer one is absent.
type placeResult struct {
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Site         string    `json:"site"`
	Domain       string    `json:"domain"`
	FullAddress  string    `json:"full_address"`
	Address      string    `json:"address"`
	Rating       flexFloat `json:"rating"`
	Reviews      flexInt   `json:"reviews"`
	ReviewsCount flexInt   `json:"reviews_count"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	GoogleID     string    `json:"google_id"`
	URL          string    `json:"url"`
}

// Fetch retrieves business records matching the query.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - query: business category or free-text search term.
//   - location: geographic qualifier, appended to the query when set.
//   - maxResults: maximum number of records to return.
// Returns:
//   - []domain.RawBusinessRecord: mapped records, truncated to maxResults.
//   - error: non-nil if the provider call or decoding fails.
func (a *Adapter) Fetch(ctx context.Context, query, location string, maxResults int) ([]domain.RawBusinessRecord, error) {
	searchQuery := strings.TrimSpace(query + " " + location)

	var resp searchResponse
	httpResp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    searchQuery,
			"limit":    strconv.Itoa(maxResults),
			"language": "en",
			"region":   "us",
			"async":    "false",
		}).
		SetResult(&resp).
		Get(a.baseURL + searchPath)

	if err != nil {
		return nil, fmt.Errorf("failed to call places API: %w", err)
	}

	if httpResp.StatusCode() != 200 {
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf("places API error: %s", resp.ErrorMessage)
		}
		return nil, fmt.Errorf("places API error: status %d", httpResp.StatusCode())
	}

	results, err := decodeResults(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	records := make([]domain.RawBusinessRecord, 0, len(results))
	for _, r := range results {
		records = append(records, toRecord(r))
	}

	return records, nil
}

// decodeResults unwraps the result envelope. Only the first inner list is
// used since the adapter submits a single query per call; a flat list is
// accepted as well.
func decodeResults(data json.RawMessage) ([]placeResult, error) {
	if len(data) == 0 {
		return []placeResult{}, nil
	}

	var nested [][]placeResult
	if err := json.Unmarshal(data, &nested); err == nil {
		if len(nested) == 0 {
			return []placeResult{}, nil
		}
		return nested[0], nil
	}

	var flat []placeResult
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}

// toRecord maps a provider result onto the shared record shape
func toRecord(r placeResult) domain.RawBusinessRecord {
	website := r.Site
	if website == "" {
		website = r.Domain
	}

	address := r.FullAddress
	if address == "" {
		address = r.Address
	}

	reviews := r.Reviews.Value
	if reviews == nil {
		reviews = r.ReviewsCount.Value
	}

	category := r.Type
	if category == "" {
		category = r.Category
	}

	sourceURL := r.URL
	if r.GoogleID != "" {
		sourceURL = "https://www.google.com/maps/place/?q=place_id:" + r.GoogleID
	}

	return domain.RawBusinessRecord{
		Name:         strings.TrimSpace(r.Name),
		Phone:        r.Phone,
		Website:      website,
		Address:      address,
		Rating:       r.Rating.Value,
		ReviewsCount: reviews,
		Category:     category,
		SourceURL:    sourceURL,
	}
}
