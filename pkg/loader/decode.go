package loader

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

func requireDate(s string) (ledger.Date, error) {
	if s == "" {
		return "", errors.New("missing date")
	}
	return parseDate(s)
}

func parseDate(s string) (ledger.Date, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date \"%s\"", s)
	}
	return ledger.Date(s), nil
}

func parseBooking(s string) (ledger.Booking, error) {
	b := ledger.Booking(s)
	switch b {
	case ledger.BookingNone, ledger.BookingStrict, ledger.BookingAverage,
		ledger.BookingFifo, ledger.BookingLifo:
		return b, nil
	}
	return ledger.BookingNone, fmt.Errorf("unknown booking method \"%s\"", s)
}

// parseFlag accepts any single-character flag; absent means fallback
// (the okay flag for transactions, no flag for postings).
func parseFlag(s string, fallback ledger.Flag) (ledger.Flag, error) {
	if s == "" {
		return fallback, nil
	}
	if len(s) != 1 {
		return "", fmt.Errorf("invalid flag \"%s\"", s)
	}
	return ledger.Flag(s), nil
}

func parseNumber(s string) (decimal.Decimal, error) {
	n, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number \"%s\"", s)
	}
	return n, nil
}

// decodeAmount decodes a complete amount; both fields are required.
func decodeAmount(a *amount) (ledger.Amount, error) {
	if a == nil {
		return ledger.Amount{}, errors.New("missing amount")
	}
	if a.Number == "" {
		return ledger.Amount{}, errors.New("amount requires a number")
	}
	n, err := parseNumber(a.Number)
	if err != nil {
		return ledger.Amount{}, err
	}
	if a.Currency == "" {
		return ledger.Amount{}, errors.New("amount requires a currency")
	}
	return ledger.Amount{Number: n, Currency: a.Currency}, nil
}

// decodeUnits decodes a posting amount, where number, currency, or the
// whole amount may be left out.
func decodeUnits(a *amount) (ledger.IncompleteAmount, error) {
	var units ledger.IncompleteAmount
	if a == nil {
		return units, nil
	}
	if a.Number != "" {
		n, err := parseNumber(a.Number)
		if err != nil {
			return units, err
		}
		units.Number = &n
	}
	units.Currency = a.Currency
	return units, nil
}

func decodePrice(a *amount) (*ledger.Amount, error) {
	if a == nil {
		return nil, nil
	}
	amt, err := decodeAmount(a)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	return &amt, nil
}

func decodeCost(c *cost) (*ledger.CostSpec, error) {
	if c == nil {
		return nil, nil
	}
	spec := &ledger.CostSpec{Currency: c.Currency, Label: c.Label}
	if c.NumberPerUnit != "" {
		n, err := parseNumber(c.NumberPerUnit)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		spec.NumberPerUnit = &n
	}
	if c.NumberTotal != "" {
		n, err := parseNumber(c.NumberTotal)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		spec.NumberTotal = &n
	}
	if c.Date != "" {
		d, err := parseDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		spec.Date = d
	}
	return spec, nil
}

// decodeMeta turns a YAML mapping into Metadata, keeping the key order
// the document wrote them in. An absent node yields empty metadata.
func decodeMeta(node *yaml.Node) (ledger.Metadata, error) {
	var m ledger.Metadata
	if node.Kind == 0 || node.Tag == "!!null" {
		return m, nil
	}
	if node.Kind != yaml.MappingNode {
		return m, errors.New("meta must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return m, fmt.Errorf("meta entry %d must map a scalar key to a scalar value", i/2)
		}
		m.Set(key.Value, value.Value)
	}
	return m, nil
}
