package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// minTextLength is the shortest extracted text considered a real posting.
// Shorter pages are almost always JavaScript-rendered shells.
const minTextLength = 500

// NeedsBrowser reports whether a fetched page should be re-rendered in a
// headless browser before parsing.
func NeedsBrowser(page *Page) bool {
	return len(page.Text) < minTextLength
}

// RenderPage loads a posting URL in headless Chrome and returns the page
// with its rendered HTML re-extracted. Requires Chrome or Chromium on the
// host.
func RenderPage(ctx context.Context, urlStr string, timeout time.Duration, log *zap.Logger) (*Page, error) {
	log.Debug("rendering posting in headless browser", zap.String("url", urlStr))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the description in.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed for %s: %w", urlStr, err)
	}

	log.Debug("rendered posting", zap.String("url", urlStr), zap.Int("bytes", len(html)))

	page := &Page{URL: urlStr, HTML: html, StatusCode: 200}
	if err := page.extract(); err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to parse rendered HTML", Cause: err}
	}
	return page, nil
}
