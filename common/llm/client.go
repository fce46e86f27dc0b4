// Package llm asks an OpenAI-compatible model for replies that follow a
// JSON schema reflected from a Go type.
package llm

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	// ErrNotConfigured is returned by New when no API key is set. Callers
	// serve offline answers instead.
	ErrNotConfigured = errors.New("llm: no API key configured")

	// ErrMalformedReply means the model answered with something that does
	// not decode into the requested type.
	ErrMalformedReply = errors.New("llm: malformed reply")
)

const (
	DefaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1500
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64 // zero keeps the model default
}

// Prompt is a system instruction and a user message. Context is appended to
// the user message as indented JSON.
type Prompt struct {
	System  string
	User    string
	Context map[string]any
}

// Message renders the user message together with its context.
func (p Prompt) Message() string {
	if len(p.Context) == 0 {
		return p.User
	}
	raw, err := json.MarshalIndent(p.Context, "", "  ")
	if err != nil {
		return fmt.Sprintf("%s\n\nContext:\n%v", p.User, p.Context)
	}
	return p.User + "\n\nContext:\n" + string(raw)
}

// Schema names the reply format sent with a prompt.
type Schema struct {
	Name        string
	Description string
	Definition  *jsonschema.Schema
}

// SchemaOf reflects T inline with extra properties forbidden, which strict
// structured output requires.
func SchemaOf[T any](name, description string) Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return Schema{Name: name, Description: description, Definition: reflector.Reflect(v)}
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	Latency          time.Duration
}

// Client completes a prompt and decodes the reply into out, which must
// point at the type the schema was reflected from.
type Client interface {
	Complete(ctx context.Context, prompt Prompt, schema Schema, out any) (Usage, error)
	Model() string
}

type openAIClient struct {
	api         openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

func New(cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		api:         openai.NewClient(opts...),
		model:       cmp.Or(cfg.Model, DefaultModel),
		maxTokens:   int64(cmp.Or(cfg.MaxTokens, defaultMaxTokens)),
		temperature: cfg.Temperature,
	}, nil
}

func (c *openAIClient) Complete(ctx context.Context, prompt Prompt, schema Schema, out any) (Usage, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.Message()),
		},
		MaxTokens: openai.Int(c.maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        schema.Name,
					Description: openai.String(schema.Description),
					Schema:      schema.Definition,
					Strict:      openai.Bool(true),
				},
			},
		},
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return Usage{}, fmt.Errorf("completing %s: %w", schema.Name, err)
	}

	usage := Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		Latency:          time.Since(start),
	}

	if len(resp.Choices) == 0 {
		return usage, fmt.Errorf("%w: %s: no choices", ErrMalformedReply, schema.Name)
	}
	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return usage, fmt.Errorf("%w: %s: refused: %s", ErrMalformedReply, schema.Name, msg.Refusal)
	}
	if err := json.Unmarshal([]byte(msg.Content), out); err != nil {
		return usage, fmt.Errorf("%w: %s: %w", ErrMalformedReply, schema.Name, err)
	}
	return usage, nil
}

func (c *openAIClient) Model() string {
	return c.model
}

// Retryable reports whether repeating a failed Complete may help: rate
// limits, server errors and transport failures. Cancellation, configuration,
// malformed replies and other API errors are final.
func Retryable(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, ErrNotConfigured),
		errors.Is(err, ErrMalformedReply):
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
