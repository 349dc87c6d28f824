package ledger

import (
	"fmt"
	"strings"
)

// AccountType is the top-level category of an account.
type AccountType int

const (
	Assets AccountType = iota
	Liabilities
	Equity
	Income
	Expenses
)

// String returns the capitalized English name used as the first segment
// of account names.
func (t AccountType) String() string {
	switch t {
	case Assets:
		return "Assets"
	case Liabilities:
		return "Liabilities"
	case Equity:
		return "Equity"
	case Income:
		return "Income"
	case Expenses:
		return "Expenses"
	}
	return fmt.Sprintf("AccountType(%d)", int(t))
}

// Account identifies one account as a type plus path segments, e.g.
// Assets with parts ["Bank", "Checking"] for Assets:Bank:Checking.
type Account struct {
	Type  AccountType
	Parts []string
}

// String returns the canonical colon-joined account name.
func (a Account) String() string {
	return a.Type.String() + ":" + strings.Join(a.Parts, ":")
}

// ParseAccount builds an Account from its canonical text form. The first
// segment must be one of the five account type names and at least one
// non-empty segment must follow. The renderer never calls this; it exists
// for producers such as pkg/loader that receive accounts as strings.
func ParseAccount(s string) (Account, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Account{}, fmt.Errorf("invalid account %q: need a type and at least one segment", s)
	}

	var ty AccountType
	switch parts[0] {
	case "Assets":
		ty = Assets
	case "Liabilities":
		ty = Liabilities
	case "Equity":
		ty = Equity
	case "Income":
		ty = Income
	case "Expenses":
		ty = Expenses
	default:
		return Account{}, fmt.Errorf("invalid account %q: unknown type %q", s, parts[0])
	}

	for _, p := range parts[1:] {
		if p == "" {
			return Account{}, fmt.Errorf("invalid account %q: empty segment", s)
		}
	}

	return Account{Type: ty, Parts: parts[1:]}, nil
}
