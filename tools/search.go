package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/tools/duckduckgo"
)

// SearchInput is the input schema for the web search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema_description:"The search query to look up"`
}

// SearchConfig configures the web search tool.
type SearchConfig struct {
	MaxResults int    `yaml:"max_results" json:"max_results"`
	UserAgent  string `yaml:"user_agent" json:"user_agent"`
}

// SearchTool searches the web using DuckDuckGo.
type SearchTool struct {
	client *duckduckgo.Tool
}

func NewSearchTool(cfg SearchConfig) (*SearchTool, error) {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = duckduckgo.DefaultUserAgent
	}
	ddg, err := duckduckgo.New(cfg.MaxResults, cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	return &SearchTool{client: ddg}, nil
}

func (s *SearchTool) Name() string {
	return "search"
}

func (s *SearchTool) Description() string {
	return "Search the web using DuckDuckGo for real-time information."
}

func (s *SearchTool) Parameters() map[string]any {
	return GenerateSchema[SearchInput]()
}

func (s *SearchTool) Execute(ctx context.Context, input string) (string, error) {
	var params SearchInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}
	if params.Query == "" {
		return "", fmt.Errorf("query must not be empty")
	}

	res, err := s.client.Call(ctx, params.Query)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	return res, nil
}
