package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/d60-Lab/wellness-companion/config"
)

// Generator 文本生成端点抽象，返回 JSON 负载
type Generator interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// GeminiClient Generator 的 genai 实现
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, classifyError(err)
	}
	return json.RawMessage(resp.Text()), nil
}

// classifyError 在适配层把过载信号归一为带类型的 ErrOverloaded，
// 之后的重试逻辑只依赖 errors.Is，不再做文本匹配
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 503:
			return fmt.Errorf("%w: %v", ErrOverloaded, err)
		}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "unavailable") ||
		strings.Contains(msg, "resource_exhausted") {
		return fmt.Errorf("%w: %v", ErrOverloaded, err)
	}
	return err
}
