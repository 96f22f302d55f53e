package assistant

import "testing"

func TestExtractJSONArrayPlain(t *testing.T) {
	raw := `[{"action":"SALE","item":"Rice","quantity":5,"price":2000}]`
	got := ExtractJSONArray(raw)
	if got != raw {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestExtractJSONArrayWithProse(t *testing.T) {
	raw := `Sure! Here is what I parsed:
[{"action":"EXPENSE","item":"fuel","price":2000}]
Let me know if you need anything else.`
	got := ExtractJSONArray(raw)
	want := `[{"action":"EXPENSE","item":"fuel","price":2000}]`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractJSONArrayWithCodeFences(t *testing.T) {
	raw := "```json\n[{\"action\":\"CHAT\",\"message\":\"hello\"}]\n```"
	got := ExtractJSONArray(raw)
	want := `[{"action":"CHAT","message":"hello"}]`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractJSONArrayNestedBrackets(t *testing.T) {
	raw := `[{"action":"CREATE_PRODUCT","item":"Meatpie","recipe":[{"item":"flour","quantity":0.2}]}]`
	got := ExtractJSONArray(raw)
	if got != raw {
		t.Fatalf("nested array truncated: %q", got)
	}
}

func TestExtractJSONArrayBracketInsideString(t *testing.T) {
	raw := `[{"action":"CHAT","message":"use [brackets] freely"}]`
	got := ExtractJSONArray(raw)
	if got != raw {
		t.Fatalf("bracket inside string broke the scan: %q", got)
	}
}

func TestExtractJSONArrayNone(t *testing.T) {
	if got := ExtractJSONArray("no structured data here"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
