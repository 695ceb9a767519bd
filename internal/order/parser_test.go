package order

import (
	"errors"
	"testing"
)

func TestParseExtraction_Valid(t *testing.T) {
	payload := `{
		"intent": "TRANSACTION",
		"global_command": null,
		"results": [
			{"action": "add", "item": "Diet Coke", "quantity": 2, "price": null, "modifiers": ["No Ice"]}
		]
	}`

	result, err := ParseExtraction([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Intent != IntentTransaction {
		t.Errorf("expected TRANSACTION intent, got %q", result.Intent)
	}
	if result.GlobalCommand != CommandNone {
		t.Errorf("expected no command, got %q", result.GlobalCommand)
	}
	if len(result.Results) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(result.Results))
	}

	line := result.Results[0]
	if line.Item != "Diet Coke" || line.Quantity != 2 || line.Price != nil {
		t.Errorf("unexpected line item: %+v", line)
	}
	if len(line.Modifiers) != 1 || line.Modifiers[0] != "No Ice" {
		t.Errorf("unexpected modifiers: %v", line.Modifiers)
	}
}

func TestParseExtraction_NullIntentAndAbsentFields(t *testing.T) {
	payload := `{"results": [{"item": "Lobster", "price": 50}]}`

	result, err := ParseExtraction([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Intent != IntentNone {
		t.Errorf("expected null intent to map to none, got %q", result.Intent)
	}

	line := result.Results[0]
	if line.Action != "" {
		t.Errorf("expected absent action to stay empty for the engine, got %q", line.Action)
	}
	if line.Quantity != 1 {
		t.Errorf("expected absent quantity to default to 1, got %d", line.Quantity)
	}
	if line.Modifiers == nil || len(line.Modifiers) != 0 {
		t.Errorf("expected empty modifiers, got %v", line.Modifiers)
	}
}

func TestParseExtraction_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not JSON", `this is not json`},
		{"unknown intent", `{"intent": "PARTY", "results": []}`},
		{"unknown command", `{"global_command": "EXPLODE", "results": []}`},
		{"missing item", `{"results": [{"action": "add", "price": 5}]}`},
		{"blank item", `{"results": [{"item": "   "}]}`},
		{"negative price", `{"results": [{"item": "Lobster", "price": -5}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExtraction([]byte(tc.payload))
			if err == nil {
				t.Fatal("expected a parse error")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseExtraction_EmptyResults(t *testing.T) {
	result, err := ParseExtraction([]byte(`{"intent": null, "global_command": null, "results": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Results) != 0 {
		t.Fatalf("expected no line items, got %d", len(result.Results))
	}
}
