// Package external provides sources for the random draw that resolves a
// fight. The production source is random.org; a seeded local PRNG backs
// offline runs and tests.
package external

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RandomOrgClient fetches true-random decimal fractions from random.org
// (no API key required for the plain-format endpoint).
type RandomOrgClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRandomOrgClient builds a client; a nil httpClient gets a 5s timeout.
func NewRandomOrgClient(baseURL string, httpClient *http.Client) *RandomOrgClient {
	if baseURL == "" {
		baseURL = "https://www.random.org"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &RandomOrgClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Draw returns a random fraction in [0, 1) with two decimal places.
func (c *RandomOrgClient) Draw(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to random.org failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("random.org non-200: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read random.org response: %w", err)
	}

	text := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid response from random.org: %q", text)
	}
	return value, nil
}

// LocalSource is a seeded PRNG draw source for offline deployments.
type LocalSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalSource seeds a local source; seed 0 means current time.
func NewLocalSource(seed int64) *LocalSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LocalSource{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns a pseudo-random fraction in [0, 1).
func (s *LocalSource) Draw(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64(), nil
}
