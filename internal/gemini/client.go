package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	genai "google.golang.org/genai"
)

// ErrNoCredentials is returned when no API key is configured. Report
// actions detect it before any network call is made.
var ErrNoCredentials = errors.New("no Gemini API key configured")

// ErrEmptyResponse is returned when the model produced no usable candidate.
var ErrEmptyResponse = errors.New("empty response from model")

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 90 * time.Second
)

// Citation is a web source attached to a grounded response.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Reply is the raw gateway result: the model text plus any web citations
// from grounding metadata.
type Reply struct {
	Text    string
	Sources []Citation
}

// Options select the response shape for one generation call.
type Options struct {
	// ExpectJSON asks the model for application/json output.
	ExpectJSON bool
	// UseWebSearch enables Google Search grounding; citations are returned
	// in Reply.Sources.
	UseWebSearch bool
}

// Client is a thin wrapper around the official genai client. Cross-cutting
// concerns (prompt assembly, parsing, the error-string convention) live in
// the callers; this type only performs the API call.
type Client struct {
	cli     *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a Gemini client. An empty apiKey yields ErrNoCredentials
// so callers can degrade gracefully instead of failing at startup.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoCredentials
	}
	if model == "" {
		model = defaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Client{cli: cli, model: model, timeout: defaultTimeout}, nil
}

// Generate sends the prompt and returns the model's text plus citations.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{}
	if opts.ExpectJSON && !opts.UseWebSearch {
		// Grounded calls reject a JSON MIME type; the prompt contract
		// enforces JSON-only output in that case.
		cfg.ResponseMIMEType = "application/json"
	}
	if opts.UseWebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return Reply{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Reply{}, ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	var text string
	for _, p := range cand.Content.Parts {
		text += p.Text
	}

	return Reply{Text: text, Sources: citations(cand)}, nil
}

func citations(cand *genai.Candidate) []Citation {
	if cand.GroundingMetadata == nil {
		return nil
	}
	var out []Citation
	for _, chunk := range cand.GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, Citation{Title: chunk.Web.Title, URL: chunk.Web.URI})
	}
	return out
}
