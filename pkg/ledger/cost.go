package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CostSpec is the {...} lot-cost annotation on a posting. Every field is
// optional; whatever is present is rendered and nothing more. A total
// number switches the annotation to the double-brace form.
type CostSpec struct {
	NumberPerUnit *decimal.Decimal
	NumberTotal   *decimal.Decimal
	Currency      string
	Date          Date
	Label         string
}

// String renders the cost spec. Braces double to {{ }} when a total
// number is present. The content lists the present fields comma-separated
// in the order cost amount, date, quoted label; the total number wins
// over the per-unit number when both are set. An empty spec renders {}.
func (c CostSpec) String() string {
	lbrace, rbrace := "{", "}"
	if c.NumberTotal != nil {
		lbrace, rbrace = "{{", "}}"
	}

	num := c.NumberTotal
	if num == nil {
		num = c.NumberPerUnit
	}

	var fields []string
	if s := (IncompleteAmount{Number: num, Currency: c.Currency}).String(); s != "" {
		fields = append(fields, s)
	}
	if c.Date != "" {
		fields = append(fields, string(c.Date))
	}
	if c.Label != "" {
		fields = append(fields, `"`+c.Label+`"`)
	}

	return lbrace + strings.Join(fields, ", ") + rbrace
}
