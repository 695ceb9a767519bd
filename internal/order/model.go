package order

// Intent is the top-level classification returned by the extraction
// collaborator. The zero value means the model returned null.
type Intent string

const (
	IntentNone        Intent = ""
	IntentTransaction Intent = "TRANSACTION"
	IntentSystem      Intent = "SYSTEM"
	IntentAddToMenu   Intent = "ADD_TO_MENU"
)

// Command is a system-level directive that takes precedence over
// line-item processing. The zero value means no command.
type Command string

const (
	CommandNone      Command = ""
	CommandClearCart Command = "CLEAR_CART"
	CommandCheckout  Command = "CHECKOUT"
	CommandShowCart  Command = "SHOW_CART"
)

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionError  = "error"
)

// LineItem is one validated requested action from the extraction
// payload. Price is nil when the user did not state one.
type LineItem struct {
	Action    string
	Item      string
	Quantity  int
	Price     *float64
	Modifiers []string
}

// ExtractionResult is the validated form of the collaborator payload.
type ExtractionResult struct {
	Intent        Intent
	GlobalCommand Command
	Results       []LineItem
}

// ResultLine is one reconciled output entry. Error lines carry
// Action == "error" plus Item and Error; success lines carry the
// resolved price and normalized action.
type ResultLine struct {
	Action    string   `json:"action"`
	Item      string   `json:"item"`
	Quantity  int      `json:"quantity,omitempty"`
	Price     float64  `json:"price,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	IsNew     bool     `json:"is_new,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// IsError reports whether this line is a per-item error entry.
func (l ResultLine) IsError() bool {
	return l.Action == ActionError
}

// Response is the assembled outward payload. Results is never nil and
// holds exactly one line per processed input line, in input order.
type Response struct {
	Intent        Intent       `json:"intent"`
	GlobalCommand Command      `json:"global_command,omitempty"`
	Results       []ResultLine `json:"results"`
}
