package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/config"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

type Anthropic struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
	timeout     time.Duration
}

func NewAnthropic(cfg config.AIConfig) *Anthropic {
	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaude3_5SonnetLatest)
	}

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 2000
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	logger.Info("Anthropic client initialized", zap.String("model", model))

	return &Anthropic{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       model,
		temperature: float64(cfg.Temperature),
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

func (a *Anthropic) Name() string {
	return "anthropic"
}

func (a *Anthropic) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	b64 := base64.StdEncoding.EncodeToString(image)

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   a.maxTokens,
		Temperature: anthropic.Float(a.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mimeType, b64),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}

	logger.Debug("Anthropic message generated",
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return sb.String(), nil
}
