package relayer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	lctypes "github.com/ethbeacon/lightclient/types"
)

// APIFetcher implements Fetcher by calling a Beacon-API-shaped light
// client endpoint, in the teacher's own request/response style
// (url.Parse + query params + http.Client.Get), adapted to decode
// directly into the engine's own update structs rather than a
// zrnt/electra beacon-state response.
type APIFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIFetcher creates a new APIFetcher with the given base URL.
func NewAPIFetcher(baseURL string) *APIFetcher {
	return &APIFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// SyncCommitteePeriodUpdate retrieves the update rotating into period
// via GET /eth/v1/beacon/light_client/updates?start_period=&count=1.
func (a *APIFetcher) SyncCommitteePeriodUpdate(period uint64) (*lctypes.SyncCommitteePeriodUpdate, error) {
	endpoint, err := url.Parse(a.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	endpoint.Path = "/eth/v1/beacon/light_client/updates"
	query := endpoint.Query()
	query.Set("start_period", strconv.FormatUint(period, 10))
	query.Set("count", "1")
	endpoint.RawQuery = query.Encode()

	body, err := a.get(endpoint.String())
	if err != nil {
		return nil, err
	}

	var updates []lctypes.SyncCommitteePeriodUpdate
	if err := json.Unmarshal(body, &updates); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no light client updates found for period %d", period)
	}
	return &updates[0], nil
}

// Block retrieves a full beacon block update at slot via
// GET /eth/v2/beacon/blocks/{slot}.
func (a *APIFetcher) Block(slot uint64) (*lctypes.BlockUpdate, error) {
	endpoint, err := url.Parse(a.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	endpoint.Path = fmt.Sprintf("/eth/v2/beacon/blocks/%d", slot)

	body, err := a.get(endpoint.String())
	if err != nil {
		return nil, err
	}

	var update lctypes.BlockUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &update, nil
}

func (a *APIFetcher) get(url string) ([]byte, error) {
	resp, err := a.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
