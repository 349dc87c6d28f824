package render

import (
	"fmt"
	"io"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

// renderTransaction writes the header line, one line per posting, and the
// transaction metadata block last. Tags gain a leading '#' and links a
// leading '^' here; the model stores both bare.
func renderTransaction(w io.Writer, t *ledger.Transaction) error {
	if _, err := fmt.Fprintf(w, "%s %s", t.Date, t.Flag); err != nil {
		return err
	}
	if t.Payee != "" {
		if _, err := fmt.Fprintf(w, " \"%s\"", t.Payee); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, " \"%s\"", t.Narration); err != nil {
		return err
	}
	for _, tag := range t.Tags {
		if _, err := fmt.Fprintf(w, " #%s", tag); err != nil {
			return err
		}
	}
	for _, link := range t.Links {
		if _, err := fmt.Fprintf(w, " ^%s", link); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for i := range t.Postings {
		if err := renderPosting(w, &t.Postings[i]); err != nil {
			return err
		}
	}
	return renderMeta(w, t.Meta)
}

// renderPosting writes one indented posting line followed by the posting's
// own metadata block. The price annotation precedes the cost spec.
func renderPosting(w io.Writer, p *ledger.Posting) error {
	if _, err := io.WriteString(w, "\t"); err != nil {
		return err
	}
	if p.Flag != "" {
		if _, err := fmt.Fprintf(w, "%s ", p.Flag); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\t%s", p.Account.String(), p.Units.String()); err != nil {
		return err
	}
	if p.Price != nil {
		if _, err := fmt.Fprintf(w, " @ %s", p.Price.String()); err != nil {
			return err
		}
	}
	if p.Cost != nil {
		if _, err := fmt.Fprintf(w, " %s", p.Cost.String()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderMeta(w, p.Meta)
}
