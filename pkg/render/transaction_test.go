package render

import (
	"bytes"
	"testing"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

func TestRenderTransaction(t *testing.T) {
	tests := []struct {
		name string
		txn  *ledger.Transaction
		want string
	}{
		{
			name: "narration only",
			txn: &ledger.Transaction{
				Date:      "2023-03-01",
				Flag:      ledger.FlagOkay,
				Narration: "Coffee",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Expenses, "Food"),
						Units:   ledger.IncompleteAmount{Number: decPtr("5.00"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-01 * \"Coffee\"\n" +
				"\tExpenses:Food\t5.00 USD\n",
		},
		{
			name: "payee and narration",
			txn: &ledger.Transaction{
				Date:      "2023-03-02",
				Flag:      ledger.FlagOkay,
				Payee:     "Acme Groceries",
				Narration: "Weekly shop",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Expenses, "Food", "Groceries"),
						Units:   ledger.IncompleteAmount{Number: decPtr("87.20"), Currency: "USD"},
					},
					{
						Account: acct(ledger.Assets, "Bank", "Checking"),
						Units:   ledger.IncompleteAmount{Number: decPtr("-87.20"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-02 * \"Acme Groceries\" \"Weekly shop\"\n" +
				"\tExpenses:Food:Groceries\t87.20 USD\n" +
				"\tAssets:Bank:Checking\t-87.20 USD\n",
		},
		{
			name: "warning flag",
			txn: &ledger.Transaction{
				Date:      "2023-03-03",
				Flag:      ledger.FlagWarning,
				Narration: "Unconfirmed charge",
			},
			want: "2023-03-03 ! \"Unconfirmed charge\"\n",
		},
		{
			name: "empty narration still quoted",
			txn: &ledger.Transaction{
				Date: "2023-03-04",
				Flag: ledger.FlagOkay,
			},
			want: "2023-03-04 * \"\"\n",
		},
		{
			name: "tags and links",
			txn: &ledger.Transaction{
				Date:      "2023-03-05",
				Flag:      ledger.FlagOkay,
				Narration: "Team dinner",
				Tags:      []string{"trip-berlin", "reimbursable"},
				Links:     []string{"invoice-482"},
			},
			want: "2023-03-05 * \"Team dinner\" #trip-berlin #reimbursable ^invoice-482\n",
		},
		{
			name: "posting with flag",
			txn: &ledger.Transaction{
				Date:      "2023-03-06",
				Flag:      ledger.FlagOkay,
				Narration: "Pending refund",
				Postings: []ledger.Posting{
					{
						Flag:    ledger.FlagWarning,
						Account: acct(ledger.Assets, "Receivables"),
						Units:   ledger.IncompleteAmount{Number: decPtr("40.00"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-06 * \"Pending refund\"\n" +
				"\t! Assets:Receivables\t40.00 USD\n",
		},
		{
			name: "posting with elided amount",
			txn: &ledger.Transaction{
				Date:      "2023-03-07",
				Flag:      ledger.FlagOkay,
				Narration: "Paycheck",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Assets, "Bank", "Checking"),
						Units:   ledger.IncompleteAmount{Number: decPtr("2000.00"), Currency: "USD"},
					},
					{
						Account: acct(ledger.Income, "Salary"),
					},
				},
			},
			want: "2023-03-07 * \"Paycheck\"\n" +
				"\tAssets:Bank:Checking\t2000.00 USD\n" +
				"\tIncome:Salary\t\n",
		},
		{
			name: "posting with price",
			txn: &ledger.Transaction{
				Date:      "2023-03-08",
				Flag:      ledger.FlagOkay,
				Narration: "Currency exchange",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Assets, "Bank", "Euros"),
						Units:   ledger.IncompleteAmount{Number: decPtr("100.00"), Currency: "EUR"},
						Price:   &ledger.Amount{Number: dec("1.08"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-08 * \"Currency exchange\"\n" +
				"\tAssets:Bank:Euros\t100.00 EUR @ 1.08 USD\n",
		},
		{
			name: "posting with cost",
			txn: &ledger.Transaction{
				Date:      "2023-03-09",
				Flag:      ledger.FlagOkay,
				Narration: "Buy shares",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Assets, "Broker"),
						Units:   ledger.IncompleteAmount{Number: decPtr("10"), Currency: "VTI"},
						Cost:    &ledger.CostSpec{NumberPerUnit: decPtr("223.45"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-09 * \"Buy shares\"\n" +
				"\tAssets:Broker\t10 VTI {223.45 USD}\n",
		},
		{
			name: "posting with price and cost",
			txn: &ledger.Transaction{
				Date:      "2023-03-10",
				Flag:      ledger.FlagOkay,
				Narration: "Sell shares",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Assets, "Broker"),
						Units:   ledger.IncompleteAmount{Number: decPtr("-10"), Currency: "VTI"},
						Price:   &ledger.Amount{Number: dec("230.00"), Currency: "USD"},
						Cost: &ledger.CostSpec{
							NumberPerUnit: decPtr("223.45"),
							Currency:      "USD",
							Date:          "2023-03-09",
							Label:         "spring-lot",
						},
					},
				},
			},
			want: "2023-03-10 * \"Sell shares\"\n" +
				"\tAssets:Broker\t-10 VTI @ 230.00 USD {223.45 USD, 2023-03-09, \"spring-lot\"}\n",
		},
		{
			name: "posting with total cost",
			txn: &ledger.Transaction{
				Date:      "2023-03-11",
				Flag:      ledger.FlagOkay,
				Narration: "Buy lot at total cost",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Assets, "Broker"),
						Units:   ledger.IncompleteAmount{Number: decPtr("10"), Currency: "VTI"},
						Cost:    &ledger.CostSpec{NumberTotal: decPtr("2234.50"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-11 * \"Buy lot at total cost\"\n" +
				"\tAssets:Broker\t10 VTI {{2234.50 USD}}\n",
		},
		{
			name: "transaction metadata after postings",
			txn: &ledger.Transaction{
				Date:      "2023-03-12",
				Flag:      ledger.FlagOkay,
				Narration: "Rent",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Expenses, "Rent"),
						Units:   ledger.IncompleteAmount{Number: decPtr("1500.00"), Currency: "USD"},
					},
				},
				Meta: meta("invoice", "rent-2023-03"),
			},
			want: "2023-03-12 * \"Rent\"\n" +
				"\tExpenses:Rent\t1500.00 USD\n" +
				"\tinvoice: rent-2023-03\n",
		},
		{
			name: "posting metadata follows its posting",
			txn: &ledger.Transaction{
				Date:      "2023-03-13",
				Flag:      ledger.FlagOkay,
				Narration: "Dinner split",
				Postings: []ledger.Posting{
					{
						Account: acct(ledger.Expenses, "Food"),
						Units:   ledger.IncompleteAmount{Number: decPtr("30.00"), Currency: "USD"},
						Meta:    meta("share", "half"),
					},
					{
						Account: acct(ledger.Assets, "Bank", "Checking"),
						Units:   ledger.IncompleteAmount{Number: decPtr("-30.00"), Currency: "USD"},
					},
				},
			},
			want: "2023-03-13 * \"Dinner split\"\n" +
				"\tExpenses:Food\t30.00 USD\n" +
				"\tshare: half\n" +
				"\tAssets:Bank:Checking\t-30.00 USD\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderDirective(&buf, tt.txn); err != nil {
				t.Fatalf("RenderDirective() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("RenderDirective() = %q, want %q", got, tt.want)
			}
		})
	}
}
