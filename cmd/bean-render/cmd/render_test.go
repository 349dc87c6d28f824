package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
	"github.com/pigeonworks-llc/beancount-render/pkg/render"
)

func TestRenderToFile(t *testing.T) {
	l := &ledger.Ledger{
		Directives: []ledger.Directive{
			&ledger.Option{Name: "title", Value: "Example Ledger"},
			&ledger.Commodity{Date: "2023-01-01", Name: "USD"},
		},
	}
	path := filepath.Join(t.TempDir(), "out.beancount")

	if err := renderToFile(l, path); err != nil {
		t.Fatalf("renderToFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "option \"title\" \"Example Ledger\"\n\n2023-01-01 commodity USD\n\n"
	if string(got) != want {
		t.Errorf("renderToFile() wrote %q, want %q", got, want)
	}
}

func TestRenderToFileUnrenderable(t *testing.T) {
	l := &ledger.Ledger{
		Directives: []ledger.Directive{&ledger.Unsupported{}},
	}
	path := filepath.Join(t.TempDir(), "out.beancount")

	err := renderToFile(l, path)
	if !errors.Is(err, render.ErrUnsupported) {
		t.Errorf("renderToFile() error = %v, want ErrUnsupported", err)
	}
}

func TestRenderToFileCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.beancount")

	if err := renderToFile(&ledger.Ledger{}, path); err == nil {
		t.Error("renderToFile() error = nil, want create error")
	}
}
