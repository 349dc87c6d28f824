package ledger

// Transaction records one double-entry transaction: a header with date,
// flag, optional payee, narration, tags and links, followed by postings.
// Tags and links are stored bare, without their # and ^ sigils; the
// sigils belong to the text form and are added on output.
type Transaction struct {
	Date      Date
	Flag      Flag
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []Posting
	Meta      Metadata
}

func (*Transaction) Kind() string { return "transaction" }
func (*Transaction) directive()   {}

// Posting is one account leg of a transaction. Flag overrides the
// transaction flag when non-empty. Units may be partially or fully empty
// for later inference. Price and Cost are omitted when nil.
type Posting struct {
	Flag    Flag
	Account Account
	Units   IncompleteAmount
	Price   *Amount
	Cost    *CostSpec
	Meta    Metadata
}
