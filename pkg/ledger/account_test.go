package ledger

import "testing"

func TestAccountTypeString(t *testing.T) {
	tests := []struct {
		ty   AccountType
		want string
	}{
		{Assets, "Assets"},
		{Liabilities, "Liabilities"},
		{Equity, "Equity"},
		{Income, "Income"},
		{Expenses, "Expenses"},
		{AccountType(42), "AccountType(42)"},
	}

	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("AccountType.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAccountString(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    string
	}{
		{"two segments", Account{Type: Assets, Parts: []string{"Bank", "Checking"}}, "Assets:Bank:Checking"},
		{"one segment", Account{Type: Expenses, Parts: []string{"Food"}}, "Expenses:Food"},
		{"no segments", Account{Type: Assets}, "Assets:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.account.String(); got != tt.want {
				t.Errorf("Account.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAccount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Assets:Bank:Checking", "Assets:Bank:Checking", false},
		{"Liabilities:CreditCard", "Liabilities:CreditCard", false},
		{"Equity:Opening-Balances", "Equity:Opening-Balances", false},
		{"Income:Salary", "Income:Salary", false},
		{"Expenses:Food:Coffee", "Expenses:Food:Coffee", false},
		{"Assets", "", true},
		{"Banana:Stand", "", true},
		{"Assets::Checking", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			account, err := ParseAccount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAccount(%q) expected error, got %v", tt.input, account)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAccount(%q) returned error: %v", tt.input, err)
			}
			if got := account.String(); got != tt.want {
				t.Errorf("ParseAccount(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
