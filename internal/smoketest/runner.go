// Package smoketest drives a fixed sequence of black-box checks against a
// running boxing-platform API. Checks parse the JSON status field of each
// response; most failures abort the run, a few are logged and skipped.
package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

// DefaultBaseURL matches the API service's default listen address.
const DefaultBaseURL = "http://localhost:5002/api"

const defaultTimeout = 10 * time.Second

// The two competitors every run seeds. Attribute values satisfy the boxer
// validation rules, so add-boxer must succeed on a clean database.
var seedBoxers = []boxer.NewBoxer{
	{Name: "Rocky Marciano", Weight: 188, Height: 71, Reach: 67.5, Age: 26},
	{Name: "Joe Frazier", Weight: 205, Height: 71, Reach: 73.5, Age: 30},
}

// Options configures a smoketest run.
type Options struct {
	BaseURL  string
	EchoJSON bool
	Timeout  time.Duration
}

// Runner executes the check sequence. A nil error from Run means every
// mandatory check passed.
type Runner struct {
	baseURL string
	echo    bool
	client  *http.Client
	logger  zerolog.Logger
	out     io.Writer
}

// New builds a runner. out receives pretty-printed bodies when EchoJSON is
// set, plus the final success line.
func New(opts Options, logger zerolog.Logger, out io.Writer) *Runner {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Runner{
		baseURL: baseURL,
		echo:    opts.EchoJSON,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "smoketest").Logger(),
		out:     out,
	}
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Run executes the full check sequence, stopping at the first fatal failure.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.checkSuccess(ctx, "health", http.MethodGet, "/health", nil); err != nil {
		return err
	}
	if err := r.checkSuccess(ctx, "db-check", http.MethodGet, "/db-check", nil); err != nil {
		return err
	}

	for _, b := range seedBoxers {
		if err := r.checkSuccess(ctx, "add-boxer "+b.Name, http.MethodPost, "/add-boxer", b); err != nil {
			return err
		}
	}

	if err := r.checkSuccess(ctx, "get-boxer-by-name", http.MethodGet,
		"/get-boxer-by-name/"+url.PathEscape(seedBoxers[0].Name), nil); err != nil {
		return err
	}
	// Lookup by id is best-effort: ids depend on prior database state.
	r.checkBestEffort(ctx, "get-boxer-by-id", http.MethodGet, "/get-boxer-by-id/1", nil)

	for _, b := range seedBoxers {
		body := map[string]string{"name": b.Name}
		if err := r.checkSuccess(ctx, "enter-ring "+b.Name, http.MethodPost, "/enter-ring", body); err != nil {
			return err
		}
	}

	if err := r.checkSuccess(ctx, "get-boxers", http.MethodGet, "/get-boxers", nil); err != nil {
		return err
	}

	if err := r.checkFight(ctx); err != nil {
		return err
	}

	if err := r.checkSuccess(ctx, "clear-boxers", http.MethodPost, "/clear-boxers", nil); err != nil {
		return err
	}

	if err := r.checkSuccess(ctx, "leaderboard", http.MethodGet, "/leaderboard?sort=wins", nil); err != nil {
		return err
	}

	// Deletion is best-effort for the same reason as lookup by id.
	r.checkBestEffort(ctx, "delete-boxer", http.MethodDelete, "/delete-boxer/1", nil)

	fmt.Fprintln(r.out, "All smoketests passed successfully!")
	return nil
}

// checkSuccess issues the request and fails the run unless the response
// carries a success status.
func (r *Runner) checkSuccess(ctx context.Context, name, method, path string, body any) error {
	resp, raw, err := r.do(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s check failed: %w", name, err)
	}
	if resp.Status != "success" {
		return fmt.Errorf("%s check failed: status %q (%s)", name, resp.Status, failureDetail(resp))
	}
	r.logger.Info().Str("check", name).Msg("check passed")
	r.echoBody(raw)
	return nil
}

// checkBestEffort logs a failure instead of aborting the run.
func (r *Runner) checkBestEffort(ctx context.Context, name, method, path string, body any) {
	resp, raw, err := r.do(ctx, method, path, body)
	if err != nil {
		r.logger.Warn().Str("check", name).Err(err).Msg("best-effort check failed")
		return
	}
	if resp.Status != "success" {
		r.logger.Warn().Str("check", name).Str("detail", failureDetail(resp)).
			Msg("best-effort check did not succeed")
		return
	}
	r.logger.Info().Str("check", name).Msg("check passed")
	r.echoBody(raw)
}

// checkFight distinguishes three outcomes: a resolved fight, the expected
// domain error when fewer than two boxers are in the ring, and everything
// else, which is fatal.
func (r *Runner) checkFight(ctx context.Context) error {
	resp, raw, err := r.do(ctx, http.MethodGet, "/fight", nil)
	if err != nil {
		return fmt.Errorf("fight check failed: %w", err)
	}
	switch resp.Status {
	case "success":
		r.logger.Info().Str("check", "fight").Msg("fight resolved")
		r.echoBody(raw)
		return nil
	case "error":
		r.logger.Info().Str("check", "fight").Str("detail", failureDetail(resp)).
			Msg("fight returned a domain error (expected when the ring has fewer than two boxers)")
		return nil
	default:
		return fmt.Errorf("fight check failed: unexpected status %q", resp.Status)
	}
}

// do issues one request and decodes the status envelope. Transport failures
// and unparseable bodies are errors; an error-status body is not.
func (r *Runner) do(ctx context.Context, method, path string, body any) (apiResponse, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apiResponse{}, nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reqBody)
	if err != nil {
		return apiResponse{}, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := r.client.Do(req)
	if err != nil {
		return apiResponse{}, nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return apiResponse{}, nil, fmt.Errorf("read response body: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return apiResponse{}, nil, fmt.Errorf("unparseable response body: %w", err)
	}
	return resp, raw, nil
}

func (r *Runner) echoBody(raw []byte) {
	if !r.echo {
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Fprintln(r.out, string(raw))
		return
	}
	fmt.Fprintln(r.out, pretty.String())
}

func failureDetail(resp apiResponse) string {
	if resp.Message != "" {
		return resp.Message
	}
	if resp.Error != "" {
		return resp.Error
	}
	return "no detail provided"
}
