package ledger

import "github.com/shopspring/decimal"

// Amount is a decimal number together with a currency code. Both sides
// are always present; use IncompleteAmount where either may be omitted.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// String renders the amount as "<number> <currency>".
func (a Amount) String() string {
	return FormatNumber(a.Number) + " " + a.Currency
}

// IncompleteAmount is an amount whose number and currency are each
// independently optional, as on postings where the missing side is left
// for the consuming tool to infer. A nil Number or empty Currency means
// absent.
type IncompleteAmount struct {
	Number   *decimal.Decimal
	Currency string
}

// String renders whichever sides are present, with a single space between
// them only when both are. An empty IncompleteAmount renders "".
func (a IncompleteAmount) String() string {
	switch {
	case a.Number != nil && a.Currency != "":
		return FormatNumber(*a.Number) + " " + a.Currency
	case a.Number != nil:
		return FormatNumber(*a.Number)
	default:
		return a.Currency
	}
}

// FormatNumber renders d preserving its stored scale, so a decimal read
// from "100.00" comes back as "100.00". decimal.Decimal.String would trim
// the trailing zeros and change what the model holds.
func FormatNumber(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
