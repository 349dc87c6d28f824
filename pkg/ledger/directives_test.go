package ledger

import "testing"

func TestDirectiveKinds(t *testing.T) {
	tests := []struct {
		d    Directive
		want string
	}{
		{&Open{}, "open"},
		{&Close{}, "close"},
		{&Balance{}, "balance"},
		{&Option{}, "option"},
		{&Commodity{}, "commodity"},
		{&Custom{}, "custom"},
		{&Document{}, "document"},
		{&Event{}, "event"},
		{&Include{}, "include"},
		{&Note{}, "note"},
		{&Pad{}, "pad"},
		{&Plugin{}, "plugin"},
		{&Price{}, "price"},
		{&Query{}, "query"},
		{&Transaction{}, "transaction"},
		{&Unsupported{}, "unsupported"},
	}

	for _, tt := range tests {
		if got := tt.d.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestDirectiveDate(t *testing.T) {
	dated := []Directive{
		&Open{Date: "2023-01-01"},
		&Close{Date: "2023-01-01"},
		&Balance{Date: "2023-01-01"},
		&Commodity{Date: "2023-01-01"},
		&Custom{Date: "2023-01-01"},
		&Document{Date: "2023-01-01"},
		&Event{Date: "2023-01-01"},
		&Note{Date: "2023-01-01"},
		&Pad{Date: "2023-01-01"},
		&Price{Date: "2023-01-01"},
		&Query{Date: "2023-01-01"},
		&Transaction{Date: "2023-01-01"},
	}
	for _, d := range dated {
		date, ok := DirectiveDate(d)
		if !ok || date != "2023-01-01" {
			t.Errorf("DirectiveDate(%s) = %q, %v, want \"2023-01-01\", true", d.Kind(), date, ok)
		}
	}

	undated := []Directive{&Option{}, &Include{}, &Plugin{}, &Unsupported{}}
	for _, d := range undated {
		if _, ok := DirectiveDate(d); ok {
			t.Errorf("DirectiveDate(%s) ok = true, want false", d.Kind())
		}
	}
}
