package order

import (
	"encoding/json"
	"fmt"
	"strings"
)

type rawExtraction struct {
	Intent        *string   `json:"intent"`
	GlobalCommand *string   `json:"global_command"`
	Results       []rawLine `json:"results"`
}

type rawLine struct {
	Action    *string  `json:"action"`
	Item      *string  `json:"item"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
	Modifiers []string `json:"modifiers"`
}

// ParseExtraction validates the raw collaborator payload and converts
// it into the typed in-memory form. Any shape violation fails the
// whole request with a ParseError; nothing downstream runs on a
// payload that did not pass here.
func ParseExtraction(data []byte) (*ExtractionResult, error) {
	var raw rawExtraction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Reason: "not well-formed JSON"}
	}

	intent, err := parseIntent(raw.Intent)
	if err != nil {
		return nil, err
	}

	command, err := parseCommand(raw.GlobalCommand)
	if err != nil {
		return nil, err
	}

	result := &ExtractionResult{
		Intent:        intent,
		GlobalCommand: command,
		Results:       make([]LineItem, 0, len(raw.Results)),
	}

	for i, entry := range raw.Results {
		if entry.Item == nil || strings.TrimSpace(*entry.Item) == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("results[%d]: missing item", i)}
		}
		if entry.Price != nil && *entry.Price < 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("results[%d]: negative price", i)}
		}

		line := LineItem{
			Item:      strings.TrimSpace(*entry.Item),
			Quantity:  1,
			Price:     entry.Price,
			Modifiers: entry.Modifiers,
		}
		if entry.Action != nil {
			line.Action = *entry.Action
		}
		if entry.Quantity != nil {
			line.Quantity = *entry.Quantity
		}
		if line.Modifiers == nil {
			line.Modifiers = []string{}
		}

		result.Results = append(result.Results, line)
	}

	return result, nil
}

func parseIntent(s *string) (Intent, error) {
	if s == nil {
		return IntentNone, nil
	}
	switch Intent(*s) {
	case IntentNone, IntentTransaction, IntentSystem, IntentAddToMenu:
		return Intent(*s), nil
	}
	return IntentNone, &ParseError{Reason: "unknown intent " + *s}
}

func parseCommand(s *string) (Command, error) {
	if s == nil {
		return CommandNone, nil
	}
	switch Command(*s) {
	case CommandNone, CommandClearCart, CommandCheckout, CommandShowCart:
		return Command(*s), nil
	}
	return CommandNone, &ParseError{Reason: "unknown global_command " + *s}
}
