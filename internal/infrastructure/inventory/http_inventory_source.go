package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/usecase/interfaces"
)

var ErrInventoryUnavailable = errors.New("inventory source unavailable")

const (
	defaultInventoryURL     = "http://localhost:3001/api/inventario/public"
	defaultTimeoutMillis    = 8000
	envInventoryURL         = "INVENTORY_API_URL"
	envInventoryTimeoutMill = "INVENTORY_TIMEOUT_MS"
)

// HTTPInventorySource fetches the public inventory from the admin backend.
//
// Supported env vars (local-friendly):
//   - INVENTORY_API_URL (default: http://localhost:3001/api/inventario/public)
//   - INVENTORY_TIMEOUT_MS (default: 8000)
type HTTPInventorySource struct {
	client *http.Client
	url    string
}

var _ interfaces.IInventorySource = (*HTTPInventorySource)(nil)

func NewHTTPInventorySource() *HTTPInventorySource {
	timeout := defaultTimeoutMillis
	if v := os.Getenv(envInventoryTimeoutMill); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = ms
		}
	}
	return &HTTPInventorySource{
		client: &http.Client{Timeout: time.Duration(timeout) * time.Millisecond},
		url:    getenvDefault(envInventoryURL, defaultInventoryURL),
	}
}

// NewHTTPInventorySourceWithURL is used by tests against httptest servers.
func NewHTTPInventorySourceWithURL(client *http.Client, url string) *HTTPInventorySource {
	return &HTTPInventorySource{client: client, url: url}
}

func (s *HTTPInventorySource) FetchInventory(ctx context.Context) ([]entities.InventoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[inventory][source] fetch start url=%s", s.url)
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[inventory][source] fetch failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[inventory][source] non-success status=%d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrInventoryUnavailable, resp.StatusCode)
	}

	var records []entities.InventoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		log.Printf("[inventory][source] malformed body err=%v", err)
		return nil, fmt.Errorf("%w: malformed body: %v", ErrInventoryUnavailable, err)
	}
	log.Printf("[inventory][source] fetch success records=%d", len(records))
	return records, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
