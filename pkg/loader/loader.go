// Package loader decodes YAML ledger documents into the directive model.
//
// The document format is a plain YAML mapping with a "directives" list;
// every entry carries a "kind" field naming one of the fifteen directive
// keywords, and the remaining fields mirror the model types. Numbers are
// written as strings ("100.00") so their scale reaches the renderer
// untouched. This is a decoder for tool input, not a parser for Beancount
// syntax.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
)

type document struct {
	Directives []directive `yaml:"directives"`
}

// directive is the flat union of every per-kind field set. Which fields
// are read depends on Kind; the builders below pick them apart.
type directive struct {
	Kind string `yaml:"kind"`

	Date       string    `yaml:"date"`
	Account    string    `yaml:"account"`
	Currencies []string  `yaml:"currencies"`
	Booking    string    `yaml:"booking"`
	Name       string    `yaml:"name"`
	Value      string    `yaml:"value"`
	Args       []string  `yaml:"args"`
	Amount     *amount   `yaml:"amount"`
	Path       string    `yaml:"path"`
	Descr      string    `yaml:"description"`
	Filename   string    `yaml:"filename"`
	Comment    string    `yaml:"comment"`
	Source     string    `yaml:"source_account"`
	Module     string    `yaml:"module"`
	Config     string    `yaml:"config"`
	Currency   string    `yaml:"currency"`
	Contents   string    `yaml:"contents"`
	Flag       string    `yaml:"flag"`
	Payee      string    `yaml:"payee"`
	Narration  string    `yaml:"narration"`
	Tags       []string  `yaml:"tags"`
	Links      []string  `yaml:"links"`
	Postings   []posting `yaml:"postings"`
	Meta       yaml.Node `yaml:"meta"`
}

type posting struct {
	Flag    string    `yaml:"flag"`
	Account string    `yaml:"account"`
	Amount  *amount   `yaml:"amount"`
	Price   *amount   `yaml:"price"`
	Cost    *cost     `yaml:"cost"`
	Meta    yaml.Node `yaml:"meta"`
}

type amount struct {
	Number   string `yaml:"number"`
	Currency string `yaml:"currency"`
}

type cost struct {
	NumberPerUnit string `yaml:"number_per_unit"`
	NumberTotal   string `yaml:"number_total"`
	Currency      string `yaml:"currency"`
	Date          string `yaml:"date"`
	Label         string `yaml:"label"`
}

// LoadFile reads and decodes a YAML ledger document from disk.
func LoadFile(path string) (*ledger.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger document: %w", err)
	}
	return parse(data)
}

// Load reads and decodes a YAML ledger document from r.
func Load(r io.Reader) (*ledger.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger document: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*ledger.Ledger, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l := &ledger.Ledger{}
	for i := range doc.Directives {
		d, err := buildDirective(&doc.Directives[i])
		if err != nil {
			return nil, fmt.Errorf("directive %d: %w", i, err)
		}
		l.Directives = append(l.Directives, d)
	}
	return l, nil
}

func buildDirective(y *directive) (ledger.Directive, error) {
	switch y.Kind {
	case "open":
		return buildOpen(y)
	case "close":
		return buildClose(y)
	case "balance":
		return buildBalance(y)
	case "option":
		return buildOption(y)
	case "commodity":
		return buildCommodity(y)
	case "custom":
		return buildCustom(y)
	case "document":
		return buildDocument(y)
	case "event":
		return buildEvent(y)
	case "include":
		return buildInclude(y)
	case "note":
		return buildNote(y)
	case "pad":
		return buildPad(y)
	case "plugin":
		return buildPlugin(y)
	case "price":
		return buildPrice(y)
	case "query":
		return buildQuery(y)
	case "transaction":
		return buildTransaction(y)
	case "":
		return nil, errors.New("missing kind")
	default:
		return nil, fmt.Errorf("unknown directive kind \"%s\"", y.Kind)
	}
}

func buildOpen(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	booking, err := parseBooking(y.Booking)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Open{
		Date:       date,
		Account:    account,
		Currencies: y.Currencies,
		Booking:    booking,
		Meta:       meta,
	}, nil
}

func buildClose(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Close{Date: date, Account: account, Meta: meta}, nil
}

func buildBalance(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	amt, err := decodeAmount(y.Amount)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Balance{Date: date, Account: account, Amount: amt, Meta: meta}, nil
}

func buildOption(y *directive) (ledger.Directive, error) {
	if y.Name == "" {
		return nil, errors.New("option requires a name")
	}
	return &ledger.Option{Name: y.Name, Value: y.Value}, nil
}

func buildCommodity(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	if y.Currency == "" {
		return nil, errors.New("commodity requires a currency")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Commodity{Date: date, Name: y.Currency, Meta: meta}, nil
}

func buildCustom(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	if y.Name == "" {
		return nil, errors.New("custom requires a name")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Custom{Date: date, Name: y.Name, Args: y.Args, Meta: meta}, nil
}

func buildDocument(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	if y.Path == "" {
		return nil, errors.New("document requires a path")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Document{Date: date, Account: account, Path: y.Path, Meta: meta}, nil
}

func buildEvent(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	if y.Name == "" {
		return nil, errors.New("event requires a name")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Event{Date: date, Name: y.Name, Description: y.Descr, Meta: meta}, nil
}

func buildInclude(y *directive) (ledger.Directive, error) {
	if y.Filename == "" {
		return nil, errors.New("include requires a filename")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Include{Filename: y.Filename, Meta: meta}, nil
}

func buildNote(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Note{Date: date, Account: account, Comment: y.Comment, Meta: meta}, nil
}

func buildPad(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return nil, err
	}
	source, err := ledger.ParseAccount(y.Source)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Pad{Date: date, Account: account, SourceAccount: source, Meta: meta}, nil
}

func buildPlugin(y *directive) (ledger.Directive, error) {
	if y.Module == "" {
		return nil, errors.New("plugin requires a module")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Plugin{Module: y.Module, Config: y.Config, Meta: meta}, nil
}

func buildPrice(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	if y.Currency == "" {
		return nil, errors.New("price requires a currency")
	}
	amt, err := decodeAmount(y.Amount)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Price{Date: date, Currency: y.Currency, Amount: amt, Meta: meta}, nil
}

func buildQuery(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	if y.Name == "" {
		return nil, errors.New("query requires a name")
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}
	return &ledger.Query{Date: date, Name: y.Name, Contents: y.Contents, Meta: meta}, nil
}

func buildTransaction(y *directive) (ledger.Directive, error) {
	date, err := requireDate(y.Date)
	if err != nil {
		return nil, err
	}
	flag, err := parseFlag(y.Flag, ledger.FlagOkay)
	if err != nil {
		return nil, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return nil, err
	}

	var postings []ledger.Posting
	for i := range y.Postings {
		p, err := buildPosting(&y.Postings[i])
		if err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		postings = append(postings, p)
	}

	return &ledger.Transaction{
		Date:      date,
		Flag:      flag,
		Payee:     y.Payee,
		Narration: y.Narration,
		Tags:      y.Tags,
		Links:     y.Links,
		Postings:  postings,
		Meta:      meta,
	}, nil
}

func buildPosting(y *posting) (ledger.Posting, error) {
	var p ledger.Posting

	flag, err := parseFlag(y.Flag, "")
	if err != nil {
		return p, err
	}
	account, err := ledger.ParseAccount(y.Account)
	if err != nil {
		return p, err
	}
	units, err := decodeUnits(y.Amount)
	if err != nil {
		return p, err
	}
	price, err := decodePrice(y.Price)
	if err != nil {
		return p, err
	}
	c, err := decodeCost(y.Cost)
	if err != nil {
		return p, err
	}
	meta, err := decodeMeta(&y.Meta)
	if err != nil {
		return p, err
	}

	p = ledger.Posting{
		Flag:    flag,
		Account: account,
		Units:   units,
		Price:   price,
		Cost:    c,
		Meta:    meta,
	}
	return p, nil
}
