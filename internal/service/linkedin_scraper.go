package service

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// ScrapeResult is the raw outcome of a public-page fetch. A blocked or
// unreachable page is a valid result (Fetched=false), not an error.
type ScrapeResult struct {
	HTML    string
	Fetched bool
	Status  int
}

// ProfileScraper isolates the page-fetching strategy so the regex
// evaluator can be backed by something else later (headless browser,
// official API) without touching the scoring.
type ProfileScraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// headerStrategies are tried in order until one fetch succeeds. This
// is a bounded fallback chain, not a retry loop.
var headerStrategies = []map[string]string{
	{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9,pt-BR;q=0.8,pt;q=0.7",
		"DNT":                       "1",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Cache-Control":             "max-age=0",
	},
	{
		"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "pt-BR,pt;q=0.9,en;q=0.8",
	},
	{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	},
}

// HTTPProfileScraper fetches public profile pages with a sequence of
// request-header variants as a best-effort anti-blocking fallback.
type HTTPProfileScraper struct {
	client *resty.Client
}

func NewHTTPProfileScraper() *HTTPProfileScraper {
	return &HTTPProfileScraper{client: resty.New().SetTimeout(20 * time.Second)}
}

func (s *HTTPProfileScraper) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	result := &ScrapeResult{}
	for _, headers := range headerStrategies {
		resp, err := s.client.R().SetContext(ctx).SetHeaders(headers).Get(url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		result.Status = resp.StatusCode()
		if resp.IsSuccess() {
			result.HTML = resp.String()
			result.Fetched = true
			return result, nil
		}
	}
	return result, nil
}
