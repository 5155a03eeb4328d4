package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the OpenAI model used for response generation
	DefaultChatModel = openai.GPT3Dot5Turbo
	// DefaultMaxTokens caps the length of a generated response
	DefaultMaxTokens = 500
	// DefaultTemperature balances warmth against factual drift
	DefaultTemperature = 0.7
	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrEmptyPrompt is returned when the user message is empty
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
	// ErrNoChoices is returned when the API responds without any completion
	ErrNoChoices = errors.New("no completion choices returned")
	// ErrNoAPIKey is returned when OpenAI API key is not set
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
)

// ChatAPI defines the interface for chat completion
type ChatAPI interface {
	CreateCompletion(ctx context.Context, system, user string) (string, error)
}

// Client wraps the OpenAI API client
type Client struct {
	api     ChatAPI
	timeout time.Duration
}

type OpenAIAdapter struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAIAdapter(apiKey, model string) *OpenAIAdapter {
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenAIAdapter{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}
}

// CreateCompletion calls the OpenAI API for a single chat completion
func (a *OpenAIAdapter) CreateCompletion(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}

type Config struct {
	APIKey    string
	ChatModel string
	Timeout   time.Duration
}

// NewClient creates a new OpenAI client using defaults.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(Config{APIKey: apiKey})
}

// NewClientWithConfig creates a new OpenAI client with explicit configuration.
func NewClientWithConfig(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		api:     NewOpenAIAdapter(cfg.APIKey, cfg.ChatModel),
		timeout: timeout,
	}
}

// NewClientFromEnv creates a new OpenAI client using OPENAI_API_KEY environment variable
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return NewClient(apiKey), nil
}

// Generate produces a response for the user message under the given system
// prompt. The call is bounded by the client timeout on top of whatever
// deadline the caller's context already carries.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	if user == "" {
		return "", ErrEmptyPrompt
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.api.CreateCompletion(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	return completion, nil
}
