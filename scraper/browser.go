package scraper

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"static-scraper/utils"
)

// BrowserFetcher renders the page in headless Chrome and returns the
// resulting document HTML. Status codes are not observable this way, so
// failures surface as Connection or Timeout.
type BrowserFetcher struct {
	userAgent string
	chromeBin string
	timeout   time.Duration
	logger    *utils.Logger
}

// NewBrowserFetcher creates a fetcher driving Chrome via chromedp.
// An empty chromeBin means auto-detect.
func NewBrowserFetcher(userAgent, chromeBin string, timeout time.Duration, logger *utils.Logger) *BrowserFetcher {
	return &BrowserFetcher{
		userAgent: userAgent,
		chromeBin: chromeBin,
		timeout:   timeout,
		logger:    logger,
	}
}

func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	chromeBin := b.chromeBin
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	b.logger.Info("[fetch] Rendering %s (browser: %s)", url, chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(b.userAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	var body string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &body, chromedp.ByQuery),
	)
	if err != nil {
		kind := Connection
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(tabCtx.Err(), context.DeadlineExceeded) {
			kind = Timeout
		}
		return "", &NetworkError{Kind: kind, URL: url, Err: err}
	}

	b.logger.Info("[fetch] Rendered %s (%d bytes)", url, len(body))
	return body, nil
}

func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
