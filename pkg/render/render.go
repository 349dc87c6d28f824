// Package render writes a ledger model out as canonical Beancount text.
//
// Rendering is a one-way projection: the model is read as-is and never
// validated or mutated, and absent optional fields produce no output.
// Each node type has exactly one formatting rule, and a whole ledger is
// rendered directive by directive in stored order with a blank line
// between directives.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

// ErrUnsupported is returned when a ledger contains a directive this
// renderer has no formatting rule for. A caller wanting partial output
// must filter such directives out before rendering.
var ErrUnsupported = errors.New("cannot render unsupported directive")

// Renderer emits Beancount text. It is stateless: the zero value is ready
// to use and a single value may serve concurrent render calls, as long as
// each call has its writer to itself for the duration.
type Renderer struct{}

// Render writes the whole ledger to w using the zero Renderer.
func Render(w io.Writer, l *ledger.Ledger) error {
	return Renderer{}.RenderLedger(w, l)
}

// RenderDirective writes a single directive to w using the zero Renderer.
func RenderDirective(w io.Writer, d ledger.Directive) error {
	return Renderer{}.RenderDirective(w, d)
}

// RenderLedger writes every directive in stored order, each followed by a
// blank line. It stops at the first failure; bytes already written stay
// written.
func (r Renderer) RenderLedger(w io.Writer, l *ledger.Ledger) error {
	for _, d := range l.Directives {
		if err := r.RenderDirective(w, d); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// RenderDirective dispatches d to the formatting rule for its concrete
// type. The Unsupported sentinel (and any value outside the known union,
// such as nil) yields ErrUnsupported without writing anything.
//
// Write errors from w propagate unwrapped; they are the sink's own error
// values.
func (r Renderer) RenderDirective(w io.Writer, d ledger.Directive) error {
	switch d := d.(type) {
	case *ledger.Open:
		return renderOpen(w, d)
	case *ledger.Close:
		return renderClose(w, d)
	case *ledger.Balance:
		return renderBalance(w, d)
	case *ledger.Option:
		return renderOption(w, d)
	case *ledger.Commodity:
		return renderCommodity(w, d)
	case *ledger.Custom:
		return renderCustom(w, d)
	case *ledger.Document:
		return renderDocument(w, d)
	case *ledger.Event:
		return renderEvent(w, d)
	case *ledger.Include:
		return renderInclude(w, d)
	case *ledger.Note:
		return renderNote(w, d)
	case *ledger.Pad:
		return renderPad(w, d)
	case *ledger.Plugin:
		return renderPlugin(w, d)
	case *ledger.Price:
		return renderPrice(w, d)
	case *ledger.Query:
		return renderQuery(w, d)
	case *ledger.Transaction:
		return renderTransaction(w, d)
	case *ledger.Unsupported:
		return ErrUnsupported
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, d)
	}
}

// renderMeta writes one indented "key: value" line per metadata entry, in
// insertion order. Keys and values are written as stored, unescaped; the
// model guarantees they are valid metadata tokens.
func renderMeta(w io.Writer, m ledger.Metadata) error {
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		if _, err := fmt.Fprintf(w, "\t%s: %s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}
