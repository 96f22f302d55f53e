package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Deterministic fallback strategy: a small ordered set of patterns covering
// the dominant command phrasings. Used whenever the AI strategy is
// unavailable or returns garbage.

var (
	// "sold 5 rice at 1000 each" / "add 10 cartons of Milo at 100 each"
	saleStockRe = regexp.MustCompile(`(?i)^(sold|sell|add|received|bought|restock)\s+(\d+(?:\.\d+)?)\s+(.+?)\s+(?:at|@|for)\s*₦?\s*([\d,]+(?:\.\d+)?)\s*₦?\s*(?:each|per\b.*)?[.!]?\s*$`)

	// "create product Meat Pie at 500" / "new product Chin Chin selling for 800"
	createProductRe = regexp.MustCompile(`(?i)^(?:create|new)\s+product\s+(.+?)\s+(?:selling\s+)?(?:at|@|for)\s*₦?\s*([\d,]+(?:\.\d+)?)\s*₦?[.!]?\s*$`)

	// "paid 5000 for transport" / "spent 2k on fuel"
	expenseRe = regexp.MustCompile(`(?i)^(?:paid|spent)\s*₦?\s*([\d,]+(?:\.\d+)?)\s*₦?\s+(?:for|on)\s+(.+?)[.!]?\s*$`)

	// "5k" notation common in Nigerian trade shorthand
	kiloAmountRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*k\b`)

	currencyWordRe = regexp.MustCompile(`(?i)\b(?:naira|ngn)\b`)

	// measure phrases to strip off the front of an item name
	measurePrefixRe = regexp.MustCompile(`(?i)^(?:bags?|cartons?|bottles?|packs?|pieces?|units?|crates?|kg|litres?)\s+of\s+`)
)

// Triggers must match whole words: "count" alone would fire inside
// "account" and swallow expense commands.
var stockCheckTriggerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhow many\b`),
	regexp.MustCompile(`(?i)\bcheck stock\b`),
	regexp.MustCompile(`(?i)\bcount\b`),
}

// normalizeCurrency expands "5k" shorthand and folds currency words into the
// naira symbol. Item casing is preserved; commas are stripped at numeric
// parse, not here.
func normalizeCurrency(input string) string {
	out := kiloAmountRe.ReplaceAllStringFunc(input, func(m string) string {
		numPart := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m), "kK"))
		f, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return m
		}
		return strconv.FormatFloat(f*1000, 'f', -1, 64)
	})
	out = currencyWordRe.ReplaceAllString(out, "₦")
	return out
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(strings.Trim(s, "₦"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func cleanItemName(item string) string {
	item = strings.TrimSpace(item)
	item = measurePrefixRe.ReplaceAllString(item, "")
	return strings.TrimSpace(item)
}

func parseWithRegex(input string) ([]ActionIntent, error) {
	normalized := strings.TrimSpace(normalizeCurrency(input))

	if m := saleStockRe.FindStringSubmatch(normalized); m != nil {
		verb := strings.ToLower(m[1])
		action := ActionStockIn
		if verb == "sold" || verb == "sell" {
			action = ActionSale
		}
		qty, _ := strconv.ParseFloat(m[2], 64)
		return []ActionIntent{{
			Action:   action,
			Item:     cleanItemName(m[3]),
			Quantity: qty,
			Price:    parseAmount(m[4]),
		}}, nil
	}

	if m := createProductRe.FindStringSubmatch(normalized); m != nil {
		return []ActionIntent{{
			Action: ActionCreateProduct,
			Item:   strings.TrimSpace(m[1]),
			Price:  parseAmount(m[2]),
		}}, nil
	}

	if item, ok := matchStockCheck(normalized); ok {
		return []ActionIntent{{
			Action: ActionStockCheck,
			Item:   item,
		}}, nil
	}

	if m := expenseRe.FindStringSubmatch(normalized); m != nil {
		return []ActionIntent{{
			Action: ActionExpense,
			Item:   strings.TrimSpace(m[2]),
			Price:  parseAmount(m[1]),
		}}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoMatch, ParseSuggestion)
}

// matchStockCheck fires on any stock-question trigger and treats the rest of
// the sentence as the item.
func matchStockCheck(input string) (string, bool) {
	for _, trigger := range stockCheckTriggerRes {
		loc := trigger.FindStringIndex(input)
		if loc == nil {
			continue
		}
		rest := input[loc[1]:]
		rest = strings.TrimSpace(strings.Trim(rest, "?.!"))
		// Strip the usual question filler around the item.
		lowerRest := strings.ToLower(rest)
		for _, suffix := range []string{"do i have", "do we have", "are left", "is left", "left"} {
			if strings.HasSuffix(lowerRest, suffix) {
				rest = strings.TrimSpace(rest[:len(rest)-len(suffix)])
				lowerRest = strings.ToLower(rest)
			}
		}
		for _, prefix := range []string{"of "} {
			if strings.HasPrefix(lowerRest, prefix) {
				rest = strings.TrimSpace(rest[len(prefix):])
			}
		}
		return cleanItemName(rest), true
	}
	return "", false
}
