package summary

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// 系统提示词：约束摘要风格为简洁、可执行的经营视角
const geminiSystemPrompt = "You are a business intelligence assistant for Kopik, an AI-powered inventory management system. Generate concise, actionable business summaries from data analysis results."

// GeminiBackend Gemini 摘要后端
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend 创建 Gemini 后端实例
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiBackend{
		client: client,
		model:  model,
	}, nil
}

// Generate 生成摘要文本
// 低温度 + 限制输出长度，保证摘要稳定且贴近事实
func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	fullPrompt := geminiSystemPrompt + "\n\n" + prompt

	contents := []*genai.Content{
		genai.NewContentFromText(fullPrompt, genai.RoleUser),
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: 300,
		Temperature:     genai.Ptr[float32](0.3),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return text, nil
}
