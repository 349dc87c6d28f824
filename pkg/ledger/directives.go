package ledger

// Open declares that an account exists from a date on, optionally
// constrained to a set of commodity currencies and an inventory booking
// method.
type Open struct {
	Date       Date
	Account    Account
	Currencies []string
	Booking    Booking
	Meta       Metadata
}

func (*Open) Kind() string { return "open" }
func (*Open) directive()   {}

// Close marks an account as closed from a date on.
type Close struct {
	Date    Date
	Account Account
	Meta    Metadata
}

func (*Close) Kind() string { return "close" }
func (*Close) directive()   {}

// Balance asserts the balance of an account on a date. The assertion
// itself is checked by downstream tools, not by this module.
type Balance struct {
	Date    Date
	Account Account
	Amount  Amount
	Meta    Metadata
}

func (*Balance) Kind() string { return "balance" }
func (*Balance) directive()   {}

// Option sets a global ledger processing option. Options carry no date
// and no metadata.
type Option struct {
	Name  string
	Value string
}

func (*Option) Kind() string { return "option" }
func (*Option) directive()   {}

// Commodity declares a commodity/currency, mostly as an anchor for
// metadata about it.
type Commodity struct {
	Date Date
	Name string
	Meta Metadata
}

func (*Commodity) Kind() string { return "commodity" }
func (*Commodity) directive()   {}

// Custom is an extension directive: a quoted name followed by free-form
// arguments whose interpretation belongs to whoever defined the name.
type Custom struct {
	Date Date
	Name string
	Args []string
	Meta Metadata
}

func (*Custom) Kind() string { return "custom" }
func (*Custom) directive()   {}

// Document attaches an external file to an account.
type Document struct {
	Date    Date
	Account Account
	Path    string
	Meta    Metadata
}

func (*Document) Kind() string { return "document" }
func (*Document) directive()   {}

// Event records a named value change on a date (location, employer, ...).
type Event struct {
	Date        Date
	Name        string
	Description string
	Meta        Metadata
}

func (*Event) Kind() string { return "event" }
func (*Event) directive()   {}

// Include pulls another ledger file into the document. Resolution of the
// named file is out of scope here; the directive is only reproduced.
type Include struct {
	Filename string
	Meta     Metadata
}

func (*Include) Kind() string { return "include" }
func (*Include) directive()   {}

// Note attaches a dated comment to an account.
type Note struct {
	Date    Date
	Account Account
	Comment string
	Meta    Metadata
}

func (*Note) Kind() string { return "note" }
func (*Note) directive()   {}

// Pad inserts whatever amount is needed into Account, sourced from
// SourceAccount, to satisfy the next balance assertion.
type Pad struct {
	Date          Date
	Account       Account
	SourceAccount Account
	Meta          Metadata
}

func (*Pad) Kind() string { return "pad" }
func (*Pad) directive()   {}

// Plugin names a processing plugin with an optional configuration string.
// Plugins carry no date. Execution is out of scope; the directive is only
// reproduced.
type Plugin struct {
	Module string
	Config string
	Meta   Metadata
}

func (*Plugin) Kind() string { return "plugin" }
func (*Plugin) directive()   {}

// Price records the price of one unit of Currency on a date.
type Price struct {
	Date     Date
	Currency string
	Amount   Amount
	Meta     Metadata
}

func (*Price) Kind() string { return "price" }
func (*Price) directive()   {}

// Query stores a named query string alongside the ledger data.
type Query struct {
	Date     Date
	Name     string
	Contents string
	Meta     Metadata
}

func (*Query) Kind() string { return "query" }
func (*Query) directive()   {}

// Unsupported is the sentinel for a node the producing model could not
// classify. The renderer refuses it with an error instead of silently
// dropping it.
type Unsupported struct{}

func (*Unsupported) Kind() string { return "unsupported" }
func (*Unsupported) directive()   {}

// DirectiveDate returns the date a directive is entered under, and false
// for the kinds that carry none (option, include, plugin, unsupported).
func DirectiveDate(d Directive) (Date, bool) {
	switch d := d.(type) {
	case *Open:
		return d.Date, true
	case *Close:
		return d.Date, true
	case *Balance:
		return d.Date, true
	case *Commodity:
		return d.Date, true
	case *Custom:
		return d.Date, true
	case *Document:
		return d.Date, true
	case *Event:
		return d.Date, true
	case *Note:
		return d.Date, true
	case *Pad:
		return d.Date, true
	case *Price:
		return d.Date, true
	case *Query:
		return d.Date, true
	case *Transaction:
		return d.Date, true
	default:
		return "", false
	}
}
