package render

import (
	"fmt"
	"io"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

func renderOpen(w io.Writer, d *ledger.Open) error {
	if _, err := fmt.Fprintf(w, "%s open %s", d.Date, d.Account.String()); err != nil {
		return err
	}
	for _, currency := range d.Currencies {
		if _, err := fmt.Fprintf(w, " %s", currency); err != nil {
			return err
		}
	}
	if d.Booking != ledger.BookingNone {
		if _, err := fmt.Fprintf(w, " \"%s\"", d.Booking); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderClose(w io.Writer, d *ledger.Close) error {
	if _, err := fmt.Fprintf(w, "%s close %s\n", d.Date, d.Account.String()); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderBalance(w io.Writer, d *ledger.Balance) error {
	if _, err := fmt.Fprintf(w, "%s balance %s\t%s\n", d.Date, d.Account.String(), d.Amount.String()); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

// renderOption has no metadata block: option lines carry only the pair.
func renderOption(w io.Writer, d *ledger.Option) error {
	_, err := fmt.Fprintf(w, "option \"%s\" \"%s\"\n", d.Name, d.Value)
	return err
}

func renderCommodity(w io.Writer, d *ledger.Commodity) error {
	if _, err := fmt.Fprintf(w, "%s commodity %s\n", d.Date, d.Name); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderCustom(w io.Writer, d *ledger.Custom) error {
	if _, err := fmt.Fprintf(w, "%s custom \"%s\"", d.Date, d.Name); err != nil {
		return err
	}
	for _, arg := range d.Args {
		if _, err := fmt.Fprintf(w, " %s", arg); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderDocument(w io.Writer, d *ledger.Document) error {
	if _, err := fmt.Fprintf(w, "%s document %s \"%s\"\n", d.Date, d.Account.String(), d.Path); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderEvent(w io.Writer, d *ledger.Event) error {
	if _, err := fmt.Fprintf(w, "%s event \"%s\" \"%s\"\n", d.Date, d.Name, d.Description); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

// renderInclude writes the filename bare, without quotes.
func renderInclude(w io.Writer, d *ledger.Include) error {
	if _, err := fmt.Fprintf(w, "include %s\n", d.Filename); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderNote(w io.Writer, d *ledger.Note) error {
	if _, err := fmt.Fprintf(w, "%s note %s \"%s\"\n", d.Date, d.Account.String(), d.Comment); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderPad(w io.Writer, d *ledger.Pad) error {
	if _, err := fmt.Fprintf(w, "%s pad %s %s\n", d.Date, d.Account.String(), d.SourceAccount.String()); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderPlugin(w io.Writer, d *ledger.Plugin) error {
	if _, err := fmt.Fprintf(w, "plugin \"%s\"", d.Module); err != nil {
		return err
	}
	if d.Config != "" {
		if _, err := fmt.Fprintf(w, " \"%s\"", d.Config); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderPrice(w io.Writer, d *ledger.Price) error {
	if _, err := fmt.Fprintf(w, "%s price %s %s\n", d.Date, d.Currency, d.Amount.String()); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}

func renderQuery(w io.Writer, d *ledger.Query) error {
	if _, err := fmt.Fprintf(w, "%s query \"%s\" \"%s\"\n", d.Date, d.Name, d.Contents); err != nil {
		return err
	}
	return renderMeta(w, d.Meta)
}
