// Package rates provides exchange-rate tables used to load a money.Bank.
package rates

import (
	"context"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go-money-expression"
	"gopkg.in/yaml.v3"
	"math"
	"os"
)

// Service provides a snapshot of exchange rates
type Service interface {
	Rates(ctx context.Context) ([]money.Rate, error)
}

// fileService reads rates from a YAML file on every call
type fileService struct {
	// path of the rate table
	path string
}

// NewFileService constructs a Service backed by a YAML rate table, e.g.
//
//	rates:
//	  - from: CHF
//	    to: USD
//	    rate: "2"
func NewFileService(path string) Service {
	return &fileService{
		path: path,
	}
}

// Rates reads and parses the rate table
func (s *fileService) Rates(ctx context.Context) ([]money.Rate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rates file")
	}
	return Parse(raw)
}

// Parse decodes a YAML rate table
func Parse(raw []byte) ([]money.Rate, error) {
	type document struct {
		Rates []struct {
			From string `yaml:"from"`
			To   string `yaml:"to"`
			Rate string `yaml:"rate"`
		} `yaml:"rates"`
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	rates := make([]money.Rate, 0, len(doc.Rates))
	for i, r := range doc.Rates {
		from, err := money.ParseCurrency(r.From)
		if err != nil {
			return nil, errors.Wrapf(err, "rate %d: from", i)
		}
		to, err := money.ParseCurrency(r.To)
		if err != nil {
			return nil, errors.Wrapf(err, "rate %d: to", i)
		}
		rate, err := parseRate(r.Rate)
		if err != nil {
			return nil, errors.Wrapf(err, "rate %d: %v->%v", i, from, to)
		}
		rates = append(rates, money.Rate{From: from, To: to, Rate: rate})
	}
	return rates, nil
}

// parseRate accepts integral decimals only, "2" or "2.0" but not "2.5"
func parseRate(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Wrap(err, "bad rate value")
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, errors.Errorf("rate %v is not an integer", value)
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errors.Errorf("rate %v out of range", value)
	}
	return d.IntPart(), nil
}

// staticService serves a fixed table
type staticService struct {
	rates []money.Rate
}

// NewStaticService constructs a Service that always returns rates
func NewStaticService(rates ...money.Rate) Service {
	return &staticService{
		rates: rates,
	}
}

func (s *staticService) Rates(_ context.Context) ([]money.Rate, error) {
	return s.rates, nil
}

// LoadBank builds a fresh Bank from the current rates of s
func LoadBank(ctx context.Context, s Service) (*money.Bank, error) {
	rates, err := s.Rates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading rates")
	}

	bank := money.NewBank()
	for _, r := range rates {
		if err := bank.AddRate(r.From, r.To, r.Rate); err != nil {
			return nil, err
		}
	}
	return bank, nil
}
