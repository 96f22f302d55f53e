package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/platform/llm"
)

// ErrNoMatch means neither strategy could derive an action from the input.
var ErrNoMatch = errors.New("command did not match any known pattern")

// ParseSuggestion is surfaced to the user alongside a parse failure.
const ParseSuggestion = `Try something like "Sold 5 bags of rice at 1000 each" or "Paid 5000 for transport".`

// Parser turns free-text commands into action intents. The AI strategy is
// tried first; any failure there (service error, malformed response) falls
// back to the deterministic regex strategy.
type Parser struct {
	log *logger.Logger
	ai  llm.Client
}

func NewParser(log *logger.Logger, ai llm.Client) *Parser {
	return &Parser{log: log.With("service", "CommandParser"), ai: ai}
}

// Parse returns at least one intent or an error. A nil AI client (service not
// configured) goes straight to the regex strategy.
func (p *Parser) Parse(ctx context.Context, input string) ([]ActionIntent, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty command", ErrNoMatch)
	}

	if p.ai != nil {
		intents, err := p.parseWithAI(ctx, input)
		if err == nil {
			return intents, nil
		}
		p.log.Warn("AI parse failed, falling back to regex", "error", err)
	}

	return parseWithRegex(input)
}

func (p *Parser) parseWithAI(ctx context.Context, input string) ([]ActionIntent, error) {
	text, err := p.ai.GenerateText(ctx,
		parseSystemPrompt,
		fmt.Sprintf("Parse this command: %q", input),
		llm.Options{MaxTokens: 1000, Temperature: 0.1},
	)
	if err != nil {
		return nil, fmt.Errorf("llm call: %w", err)
	}
	return decodeIntents(text)
}

// decodeIntents tolerates prose or code fences around the array, and a bare
// single object instead of an array.
func decodeIntents(raw string) ([]ActionIntent, error) {
	payload := ExtractJSONArray(raw)
	if payload == "" {
		// No array found; the model may have answered with a single object.
		single := strings.TrimSpace(stripCodeFences(raw))
		if strings.HasPrefix(single, "{") {
			var one ActionIntent
			if err := json.Unmarshal([]byte(single), &one); err != nil {
				return nil, fmt.Errorf("decode single intent: %w", err)
			}
			return normalizeIntents([]ActionIntent{one})
		}
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var intents []ActionIntent
	if err := json.Unmarshal([]byte(payload), &intents); err != nil {
		return nil, fmt.Errorf("decode intents: %w", err)
	}
	return normalizeIntents(intents)
}

func normalizeIntents(intents []ActionIntent) ([]ActionIntent, error) {
	out := make([]ActionIntent, 0, len(intents))
	for _, it := range intents {
		it.Action = strings.ToUpper(strings.TrimSpace(it.Action))
		if !validAction(it.Action) {
			continue
		}
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		if it.Price < 0 {
			it.Price = 0
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model response contained no valid actions")
	}
	return out, nil
}
