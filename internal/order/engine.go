package order

import (
	"context"
	"log"
	"strings"

	"github.com/Nomtt/knote-voice-backend/internal/catalog"
)

// Engine reconciles a validated extraction result against the catalog.
// The catalog is the only shared state it touches; each line item is
// resolved independently and inserts committed for earlier lines stay
// even if a later one fails.
type Engine struct {
	catalog catalog.Repository
}

func NewEngine(repo catalog.Repository) *Engine {
	return &Engine{catalog: repo}
}

// Process routes a request to a terminal result: a global command
// short-circuits everything, ADD_TO_MENU runs the administrative path,
// and TRANSACTION (or a null intent with line items) runs the
// transactional path. Input with nothing to do is echoed back with
// empty results.
func (e *Engine) Process(ctx context.Context, in *ExtractionResult) (*Response, error) {
	// Global commands win over line items, always.
	if in.GlobalCommand != CommandNone {
		log.Printf("COMMAND: %s", in.GlobalCommand)
		return &Response{
			Intent:        in.Intent,
			GlobalCommand: in.GlobalCommand,
			Results:       []ResultLine{},
		}, nil
	}

	switch {
	case in.Intent == IntentAddToMenu && len(in.Results) > 0:
		lines, err := e.addToMenu(ctx, in.Results)
		if err != nil {
			return nil, err
		}
		return &Response{Intent: IntentAddToMenu, Results: lines}, nil

	case (in.Intent == IntentTransaction || in.Intent == IntentNone) && len(in.Results) > 0:
		lines, err := e.transact(ctx, in.Results)
		if err != nil {
			return nil, err
		}
		// Force TRANSACTION so the frontend always sees a uniform
		// transactional shape once line items were processed.
		return &Response{Intent: IntentTransaction, Results: lines}, nil
	}

	// Irrelevant noise, SYSTEM chatter without a command, or an empty
	// result list: nothing to reconcile.
	return &Response{
		Intent:        in.Intent,
		GlobalCommand: in.GlobalCommand,
		Results:       []ResultLine{},
	}, nil
}

// addToMenu is the explicit administrative path. It never matches
// against existing items; every valid entry is inserted as-is.
func (e *Engine) addToMenu(ctx context.Context, items []LineItem) ([]ResultLine, error) {
	lines := make([]ResultLine, 0, len(items))

	for _, item := range items {
		if item.Price == nil || *item.Price == 0 {
			lines = append(lines, priceMissingLine(item.Item))
			continue
		}

		inserted, err := e.catalog.Insert(ctx, item.Item, *item.Price)
		if err != nil {
			return nil, err
		}
		log.Printf("Added to menu: %s @ %.2f", inserted.Name, inserted.Price)

		lines = append(lines, ResultLine{
			Action:    normalizeAction(item.Action),
			Item:      item.Item,
			Quantity:  item.Quantity,
			Price:     *item.Price,
			Modifiers: item.Modifiers,
			IsNew:     true,
		})
	}

	return lines, nil
}

// transact resolves each line item against the catalog, auto-learning
// unknown items that come with a usable price.
func (e *Engine) transact(ctx context.Context, items []LineItem) ([]ResultLine, error) {
	lines := make([]ResultLine, 0, len(items))

	for _, item := range items {
		found, err := e.catalog.Lookup(ctx, item.Item)
		if err != nil {
			return nil, err
		}

		if found != nil {
			// Existing item: the catalog price is authoritative,
			// whatever the extraction supplied.
			log.Printf("Matched: %s @ %.2f", item.Item, found.Price)
			lines = append(lines, ResultLine{
				Action:    normalizeAction(item.Action),
				Item:      item.Item,
				Quantity:  item.Quantity,
				Price:     found.Price,
				Modifiers: item.Modifiers,
			})
			continue
		}

		if item.Price == nil || *item.Price == 0 {
			log.Printf("Price missing for new item %q", item.Item)
			lines = append(lines, priceMissingLine(item.Item))
			continue
		}

		// Auto-learning: the user named an unknown item with a price.
		inserted, err := e.catalog.Insert(ctx, item.Item, *item.Price)
		if err != nil {
			return nil, err
		}
		log.Printf("Auto-learning: created %q @ %.2f", inserted.Name, inserted.Price)

		lines = append(lines, ResultLine{
			Action:    normalizeAction(item.Action),
			Item:      item.Item,
			Quantity:  item.Quantity,
			Price:     *item.Price,
			Modifiers: item.Modifiers,
			IsNew:     true,
		})
	}

	return lines, nil
}

func priceMissingLine(item string) ResultLine {
	return ResultLine{
		Action: ActionError,
		Item:   item,
		Error:  "Price missing for " + item,
	}
}

// normalizeAction lowercases and trims the extracted action, defaulting
// a blank one to "add".
func normalizeAction(action string) string {
	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return ActionAdd
	}
	return action
}
