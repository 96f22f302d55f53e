package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/platform/llm"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateText(ctx context.Context, system, user string, opts llm.Options) (string, error) {
	f.calls++
	return f.response, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestParseUsesAIResponse(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"SALE","item":"Rice","quantity":5,"price":2000},{"action":"SALE","item":"Beans","quantity":3,"price":1500}]`}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "Sold 5 Rice at 2000 and 3 Beans at 1500")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[1].Item != "Beans" || intents[1].Quantity != 3 {
		t.Fatalf("second intent wrong: %+v", intents[1])
	}
	if ai.calls != 1 {
		t.Fatalf("expected one AI call, got %d", ai.calls)
	}
}

func TestParseFallsBackOnAIError(t *testing.T) {
	ai := &fakeLLM{err: errors.New("service unavailable")}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "Sold 5 bags of rice at 1000 each")
	if err != nil {
		t.Fatalf("expected regex fallback to succeed: %v", err)
	}
	if intents[0].Action != ActionSale || intents[0].Item != "rice" {
		t.Fatalf("fallback intent wrong: %+v", intents[0])
	}
}

func TestParseFallsBackOnGarbageResponse(t *testing.T) {
	ai := &fakeLLM{response: "I'm sorry, I cannot help with that."}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "Paid 5000 for transport")
	if err != nil {
		t.Fatalf("expected regex fallback to succeed: %v", err)
	}
	if intents[0].Action != ActionExpense {
		t.Fatalf("expected EXPENSE, got %s", intents[0].Action)
	}
}

func TestParseToleratesSingleObject(t *testing.T) {
	ai := &fakeLLM{response: `{"action":"chat","message":"Business is looking good!"}`}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "how is business?")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if intents[0].Action != ActionChat {
		t.Fatalf("expected CHAT with uppercased action, got %s", intents[0].Action)
	}
}

func TestParseNilClientGoesStraightToRegex(t *testing.T) {
	p := NewParser(testLogger(t), nil)

	intents, err := p.Parse(context.Background(), "Sold 2 eggs at 100 each")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if intents[0].Action != ActionSale {
		t.Fatalf("expected SALE, got %s", intents[0].Action)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(testLogger(t), nil)
	if _, err := p.Parse(context.Background(), "   "); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestParseClampsNegativeNumbers(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"SALE","item":"Rice","quantity":-5,"price":-100}]`}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "sold -5 rice")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if intents[0].Quantity != 0 || intents[0].Price != 0 {
		t.Fatalf("expected negatives clamped to zero, got %+v", intents[0])
	}
}

func TestParseDropsUnknownActions(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"DANCE"},{"action":"SUMMARY"}]`}
	p := NewParser(testLogger(t), ai)

	intents, err := p.Parse(context.Background(), "summarize today")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(intents) != 1 || intents[0].Action != ActionSummary {
		t.Fatalf("expected only SUMMARY to survive, got %+v", intents)
	}
}
