package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// ScraperInput is the input schema for the webpage scraper tool.
type ScraperInput struct {
	URL string `json:"url" jsonschema_description:"The full URL of the webpage to scrape (e.g., https://example.com/article)"`
}

// ScraperConfig configures the webpage scraper tool.
type ScraperConfig struct {
	UserAgent        string `yaml:"user_agent" json:"user_agent"`
	TimeoutSeconds   int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxContentLength int    `yaml:"max_content_length" json:"max_content_length"`
	// Render fetches the page through a headless browser before
	// extraction, for pages that only produce content via scripts.
	Render bool `yaml:"render" json:"render"`
}

// ScraperTool fetches a webpage and extracts the main content as
// clean, sanitized text.
type ScraperTool struct {
	cfg ScraperConfig
}

func NewScraperTool(cfg ScraperConfig) *ScraperTool {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = 50000
	}
	return &ScraperTool{cfg: cfg}
}

func (s *ScraperTool) Name() string {
	return "webpage_scraper"
}

func (s *ScraperTool) Description() string {
	return "Fetch a webpage URL and extract the main content as clean, sanitized text."
}

func (s *ScraperTool) Parameters() map[string]any {
	return GenerateSchema[ScraperInput]()
}

func (s *ScraperTool) Execute(ctx context.Context, input string) (string, error) {
	var params ScraperInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}
	if params.URL == "" {
		return "", fmt.Errorf("url must not be empty")
	}

	parsedURL, err := url.Parse(params.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %v", err)
	}

	var html string
	if s.cfg.Render {
		html, err = s.fetchRendered(ctx, params.URL)
	} else {
		html, err = s.fetchStatic(ctx, params.URL)
	}
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %v", err)
	}

	// Sanitize output (remove any remaining HTML tags or scripts)
	policy := bluemonday.StrictPolicy()
	sanitized := policy.Sanitize(article.TextContent)

	output := fmt.Sprintf("TITLE: %s\n", article.Title)
	if article.Excerpt != "" {
		output += fmt.Sprintf("EXCERPT: %s\n", article.Excerpt)
	}
	output += "\n-- CONTENT --\n"

	output += truncateContent(sanitized, s.cfg.MaxContentLength)

	return output, nil
}

// truncateContent cuts s to at most max bytes and marks the cut. The
// cut backs off to a rune boundary so a multi-byte UTF-8 sequence is
// never split in half.
func truncateContent(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n... (content truncated) ..."
}

func (s *ScraperTool) fetchStatic(ctx context.Context, target string) (string, error) {
	client := &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status code %d", resp.StatusCode)
	}

	// Read at most 4MB of HTML; pages larger than that are cut off
	// before readability sees them.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	return string(data), nil
}

// fetchRendered loads the page in a headless browser and returns the
// document's outer HTML after scripts have run.
func (s *ScraperTool) fetchRendered(ctx context.Context, target string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.UserAgent(s.cfg.UserAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(target),
		chromedp.ActionFunc(func(ctx context.Context) error {
			node, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			html, err = dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render URL: %v", err)
	}
	return html, nil
}
