// Package ledger defines the in-memory model of a Beancount document: an
// ordered sequence of directives plus the account, amount, cost, and
// metadata values they are built from.
//
// The model is plain data. It is produced by callers (or by pkg/loader)
// and read by pkg/render; nothing in this package validates accounting
// invariants, resolves includes, or computes balances. Decimal numbers
// are carried through exactly as supplied.
package ledger

// Date is a calendar date already formatted as YYYY-MM-DD. The model
// stores dates as text because the renderer only passes them through;
// pkg/loader checks the format on the way in.
type Date string

// Flag marks the state of a transaction or posting. Beyond the two
// standard flags, any other stored string renders as-is, which covers the
// single-character extension flags some tools use.
type Flag string

const (
	// FlagOkay marks a transaction as complete ("*").
	FlagOkay Flag = "*"
	// FlagWarning marks a transaction as pending or suspect ("!").
	FlagWarning Flag = "!"
)

// Booking is the inventory matching policy attached to an account
// opening. The zero value BookingNone records no policy and renders
// nothing.
type Booking string

const (
	BookingNone    Booking = ""
	BookingStrict  Booking = "strict"
	BookingAverage Booking = "average"
	BookingFifo    Booking = "fifo"
	BookingLifo    Booking = "lifo"
)

// Ledger is an ordered sequence of directives. Order is significant and
// is preserved on output.
type Ledger struct {
	Directives []Directive
}

// Directive is one top-level ledger statement. It is a closed union: the
// fifteen directive types in this package plus the Unsupported sentinel
// implement it, and the unexported marker method keeps other packages
// from adding variants, so a type switch over them stays exhaustive.
type Directive interface {
	// Kind returns the directive keyword ("open", "transaction", ...).
	Kind() string

	directive()
}
