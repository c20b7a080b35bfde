package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"static-scraper/utils"
)

// Fetcher retrieves the raw body of one page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher issues a single GET with a fixed header set.
type HTTPFetcher struct {
	http   *resty.Client
	logger *utils.Logger
}

// NewHTTPFetcher builds a fetcher that sends headers on every request and
// gives up after timeout. Resty's own retries stay disabled.
func NewHTTPFetcher(headers map[string]string, timeout time.Duration, logger *utils.Logger) *HTTPFetcher {
	client := resty.New()
	client.SetHeaders(headers)
	client.SetTimeout(timeout)
	client.SetRetryCount(0)

	return &HTTPFetcher{http: client, logger: logger}
}

// Fetch returns the decoded response body or a *NetworkError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.logger.Info("[fetch] Connecting to %s...", url)

	res, err := f.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", classifyTransportErr(url, err)
	}

	if !res.IsSuccess() {
		return "", &NetworkError{
			Kind:       BadStatus,
			URL:        url,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
	}

	f.logger.Info("[fetch] %s -> %d (%d bytes)", url, res.StatusCode(), len(res.Body()))

	body, err := decodeBody(res.Body(), res.Header().Get("Content-Type"))
	if err != nil {
		return "", &NetworkError{Kind: Connection, URL: url, Err: err}
	}
	return body, nil
}

// decodeBody converts raw bytes to UTF-8 using the charset declared in the
// Content-Type header, a <meta> tag or a BOM, falling back to sniffing.
func decodeBody(raw []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(decoded), nil
}

func classifyTransportErr(url string, err error) *NetworkError {
	kind := Connection
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = Timeout
	}
	return &NetworkError{Kind: kind, URL: url, Err: err}
}

// RetryingFetcher wraps a Fetcher with the configured attempt policy.
type RetryingFetcher struct {
	Fetcher Fetcher
	Retry   *utils.RetryConfig
}

func (r *RetryingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body string
	err := r.Retry.Do(ctx, "fetch "+url, func(ctx context.Context) error {
		var err error
		body, err = r.Fetcher.Fetch(ctx, url)
		return err
	})
	return body, err
}
