package assistant

// Action names returned by both parsing strategies.
const (
	ActionSale          = "SALE"
	ActionStockIn       = "STOCK_IN"
	ActionCreateProduct = "CREATE_PRODUCT"
	ActionStockCheck    = "STOCK_CHECK"
	ActionExpense       = "EXPENSE"
	ActionSummary       = "SUMMARY"
	ActionChat          = "CHAT"
	ActionClarify       = "CLARIFY"
)

// RecipeItem is one ingredient reference inside a CREATE_PRODUCT intent. The
// item is a free-text name; resolution to a material happens at execution.
type RecipeItem struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
}

// ActionIntent is one structured instruction derived from a natural-language
// command. A single command may produce several intents ("Sold 5 Rice and 3
// Beans"). Quantity defaults to 1 and Price to 0 when the parser omits them.
type ActionIntent struct {
	Action   string       `json:"action"`
	Item     string       `json:"item,omitempty"`
	Quantity float64      `json:"quantity,omitempty"`
	Price    float64      `json:"price,omitempty"`
	Customer string       `json:"customer,omitempty"`
	IsCredit bool         `json:"isCredit,omitempty"`
	Date     string       `json:"date,omitempty"`
	Message  string       `json:"message,omitempty"`
	Recipe   []RecipeItem `json:"recipe,omitempty"`
}

func validAction(a string) bool {
	switch a {
	case ActionSale, ActionStockIn, ActionCreateProduct, ActionStockCheck,
		ActionExpense, ActionSummary, ActionChat, ActionClarify:
		return true
	default:
		return false
	}
}
