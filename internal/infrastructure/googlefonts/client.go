// Package googlefonts lists the families offered by the Google Fonts
// Developer API.
package googlefonts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/logging"
)

const (
	webfontsPath = "/webfonts/v1/webfonts"

	// Default HTTP client timeout when none is configured.
	defaultTimeout = 15 * time.Second

	// Maximum response body accepted (the full list is a few hundred KB).
	maxResponseSize = 16 * 1024 * 1024

	// Maximum number of attempts for retryable requests.
	maxRetryAttempts = 3

	// Base delay used for exponential backoff between retries.
	retryBaseDelay = 250 * time.Millisecond

	// Maximum delay cap for exponential backoff between retries.
	retryMaxDelay = 2 * time.Second

	// Max random jitter added to each retry backoff.
	retryJitterMax = 200 * time.Millisecond

	userAgent = "webfonts-admin"
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("google fonts API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("google fonts API returned status %d: %s", e.StatusCode, e.Message)
}

type webfontList struct {
	Items []webfontItem `json:"items"`
}

type webfontItem struct {
	Family   string   `json:"family"`
	Category string   `json:"category"`
	Variants []string `json:"variants"`
	Subsets  []string `json:"subsets"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client implements port.RemoteFontFetcher. Concurrent fetches with the
// same key share one request.
type Client struct {
	baseURL   string
	client    *http.Client
	group     singleflight.Group
	randInt63 func(n int64) int64
	sleep     func(ctx context.Context, d time.Duration) error
}

var _ port.RemoteFontFetcher = (*Client)(nil)

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		randInt63: rand.Int63n,
		sleep:     waitForBackoff,
	}
}

// FetchFonts returns every family, sorted alphabetically by the API.
// The shared request is detached from the caller that started it, so a
// cancelled caller only abandons its own wait.
func (c *Client) FetchFonts(ctx context.Context, apiKey string) ([]entity.RemoteFont, error) {
	ch := c.group.DoChan(apiKey, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchBudget())
		defer cancel()
		return c.fetch(fetchCtx, apiKey)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logging.FromContext(ctx).Debug().Msg("font list request shared with concurrent caller")
		}
		return res.Val.([]entity.RemoteFont), nil
	}
}

// fetchBudget bounds a shared fetch including its retries.
func (c *Client) fetchBudget() time.Duration {
	return time.Duration(maxRetryAttempts)*(c.client.Timeout+retryMaxDelay+retryJitterMax)
}

func (c *Client) fetch(ctx context.Context, apiKey string) ([]entity.RemoteFont, error) {
	log := logging.FromContext(ctx)

	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("sort", "alpha")
	endpoint := c.baseURL + webfontsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.doRequestWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch font list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body := io.LimitReader(resp.Body, maxResponseSize)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr apiError
		if json.NewDecoder(body).Decode(&apiErr) == nil {
			statusErr.Message = apiErr.Error.Message
		}
		return nil, statusErr
	}

	var list webfontList
	if err := json.NewDecoder(body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode font list: %w", err)
	}

	fonts := make([]entity.RemoteFont, 0, len(list.Items))
	for _, item := range list.Items {
		fonts = append(fonts, entity.RemoteFont{
			Family:   item.Family,
			Category: item.Category,
			Variants: item.Variants,
			Subsets:  item.Subsets,
		})
	}

	log.Debug().Int("families", len(fonts)).Msg("remote font list fetched")
	return fonts, nil
}

func (c *Client) doRequestWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := c.client.Do(req)
		if err != nil {
			if !isRetryableRequestError(err) || attempt == maxRetryAttempts {
				return nil, err
			}
			if waitErr := c.sleep(ctx, retryDelayForAttempt(attempt, c.randInt63)); waitErr != nil {
				return nil, waitErr
			}
			continue
		}

		if !isRetryableStatus(resp.StatusCode) || attempt == maxRetryAttempts {
			return resp, nil
		}

		_ = resp.Body.Close()
		if waitErr := c.sleep(ctx, retryDelayForAttempt(attempt, c.randInt63)); waitErr != nil {
			return nil, waitErr
		}
	}
}

// Quota and auth failures come back as 403 and are final.
func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= http.StatusInternalServerError
}

func isRetryableRequestError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func waitForBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryDelayForAttempt(attempt int, randInt63 func(n int64) int64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := retryBaseDelay
	for i := 1; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}

	if randInt63 != nil && retryJitterMax > 0 {
		delay += time.Duration(randInt63(int64(retryJitterMax)))
	}

	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}
