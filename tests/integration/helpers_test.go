//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:5002")
}

// apiPost issues a JSON POST against the API and decodes the envelope.
func apiPost(t *testing.T, path string, payload any) map[string]any {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/api%s", baseURL(), path), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(t, path, resp)
}

// apiGet issues a GET against the API and decodes the envelope.
func apiGet(t *testing.T, path string) map[string]any {
	t.Helper()

	resp, err := http.Get(fmt.Sprintf("%s/api%s", baseURL(), path))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(t, path, resp)
}

func decodeEnvelope(t *testing.T, path string, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s response failed: %v", path, err)
	}
	if _, ok := out["status"]; !ok {
		t.Fatalf("%s response missing status field", path)
	}
	return out
}

func requireSuccess(t *testing.T, path string, envelope map[string]any) {
	t.Helper()
	if envelope["status"] != "success" {
		t.Fatalf("%s did not succeed: %v", path, envelope)
	}
}
