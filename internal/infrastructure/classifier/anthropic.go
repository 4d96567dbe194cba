package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"triage/internal/domain/analysis"
	vo "triage/internal/domain/analysis/valueobjects"
	"triage/internal/domain/ticket"
	"triage/internal/shared/logger"
)

const systemPrompt = "You are a support ticket analyst. Analyze tickets and provide structured responses in JSON format."

const userPromptTemplate = `Analyze the following support ticket and provide:
1. Category (choose one: billing, bug, feature_request, account, technical, other)
2. Priority (choose one: low, medium, high, critical)
3. Brief notes explaining your reasoning

Ticket Title: %s
Ticket Description: %s

Respond in the following JSON format:
{
    "category": "category_name",
    "priority": "priority_level",
    "notes": "brief explanation"
}`

// classificationResponse is the JSON object the model is asked to return.
type classificationResponse struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Notes    string `json:"notes"`
}

// AnthropicClassifier classifies tickets by asking an Anthropic model for
// a strict-JSON verdict. It issues exactly one request per ticket with a
// bounded timeout and low temperature; on any failure (network, timeout,
// malformed reply) it logs the cause and answers with the keyword
// heuristic instead, so callers never see an error.
type AnthropicClassifier struct {
	client      anthropic.Client
	model       string
	temperature float64
	timeout     time.Duration
	fallback    *KeywordClassifier
	logger      logger.Interface
}

func NewAnthropicClassifier(apiKey, model string, temperature float64, timeout time.Duration, log logger.Interface) *AnthropicClassifier {
	return &AnthropicClassifier{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		fallback:    NewKeywordClassifier(),
		logger:      log,
	}
}

func (c *AnthropicClassifier) Classify(ctx context.Context, t *ticket.Ticket) analysis.Classification {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message, err := c.client.Messages.New(callCtx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   1024,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(userPromptTemplate, t.Title(), t.Description()))),
		},
	})
	if err != nil {
		c.logger.Warnw("classification request failed, using keyword fallback",
			"ticket_id", t.ID(), "error", err)
		return c.fallback.Classify(ctx, t)
	}

	responseText := ""
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		c.logger.Warnw("classification response had no text content, using keyword fallback",
			"ticket_id", t.ID())
		return c.fallback.Classify(ctx, t)
	}

	result, err := parseClassification(responseText)
	if err != nil {
		c.logger.Warnw("failed to parse classification response, using keyword fallback",
			"ticket_id", t.ID(), "error", err)
		return c.fallback.Classify(ctx, t)
	}

	return result
}

// parseClassification extracts the first JSON object from the model's
// reply, tolerating a fenced code block wrapper, and normalizes the
// result against the category and priority enums.
func parseClassification(responseText string) (analysis.Classification, error) {
	text := strings.TrimSpace(responseText)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "{") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end < start {
			return analysis.Classification{}, fmt.Errorf("no JSON object in response")
		}
		text = text[start : end+1]
	}

	var resp classificationResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return analysis.Classification{}, fmt.Errorf("parsing classification response: %w", err)
	}

	return analysis.Classification{
		Category: vo.NormalizeCategory(resp.Category),
		Priority: vo.NormalizePriority(resp.Priority),
		Notes:    strings.TrimSpace(resp.Notes),
	}, nil
}
