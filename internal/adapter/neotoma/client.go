package neotoma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// countryNames maps the pipeline's scope codes to the geopolitical unit names
// the Neotoma API expects.
var countryNames = map[string]string{
	"CA": "Canada",
	"US": "United States",
}

// Client implements domain.DatasetSource against the Neotoma web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Neotoma API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Datasets returns all pollen dataset/site pairs inside a national scope.
func (c *Client) Datasets(ctx context.Context, country string) ([]domain.Site, error) {
	gpName, ok := countryNames[country]
	if !ok {
		return nil, fmt.Errorf("unsupported country code %q", country)
	}

	params := url.Values{
		"datasettype": {"pollen"},
		"gpname":      {gpName},
	}

	var resp datasetsResponse
	if err := c.doRequest(ctx, c.baseURL+"/data/datasets?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch %s datasets: %w", country, err)
	}

	sites := make([]domain.Site, 0, len(resp.Data))
	for _, d := range resp.Data {
		sites = append(sites, domain.Site{
			StID:           d.Site.SiteID,
			DsID:           d.DatasetID,
			Name:           d.Site.SiteName,
			Lat:            d.Site.Latitude,
			Long:           d.Site.Longitude,
			Area:           d.Site.Area,
			DepositionType: d.Site.DepositionalEnvironment,
			Country:        country,
		})
	}
	return sites, nil
}

// ChronControls returns the chronological control sequence of one dataset,
// in the order the age model declares it.
func (c *Client) ChronControls(ctx context.Context, datasetID int) ([]domain.ChronControl, error) {
	var resp chronologyResponse
	u := fmt.Sprintf("%s/data/datasets/%d/chronology", c.baseURL, datasetID)
	if err := c.doRequest(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("fetch chronology for dataset %d: %w", datasetID, err)
	}

	controls := make([]domain.ChronControl, 0, len(resp.Data))
	for _, cc := range resp.Data {
		controls = append(controls, domain.ChronControl{
			ControlType: cc.ChronControlType,
			Age:         cc.Age,
		})
	}
	return controls, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("neotoma request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("neotoma API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Neotoma API response types.

type datasetsResponse struct {
	Data []dataset `json:"data"`
}

type dataset struct {
	DatasetID int  `json:"datasetid"`
	Site      site `json:"site"`
}

type site struct {
	SiteID                  int      `json:"siteid"`
	SiteName                string   `json:"sitename"`
	Latitude                *float64 `json:"latitude"`
	Longitude               *float64 `json:"longitude"`
	Area                    *float64 `json:"area"`
	DepositionalEnvironment string   `json:"depositionalenvironment"`
}

type chronologyResponse struct {
	Data []chronControl `json:"data"`
}

type chronControl struct {
	ChronControlType string   `json:"chroncontroltype"`
	Age              *float64 `json:"age"`
}
