package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySymbol        = errors.New("symbol is empty")
	ErrNonPositivePrice   = errors.New("price must be greater than zero")
	ErrMissingObservation = errors.New("observation time is not set")
)

type Symbol string

// ParseSymbol only normalizes case and whitespace. Whether the
// ticker exists is up to the quote source.
func ParseSymbol(s string) (Symbol, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptySymbol
	}
	return Symbol(s), nil
}

func (s Symbol) String() string {
	return string(s)
}

// Quote is a single price observation. Fields are unexported so a
// Quote can't change after NewQuote validated it.
type Quote struct {
	symbol     Symbol
	price      decimal.Decimal
	observedAt time.Time
}

func NewQuote(symbol Symbol, price decimal.Decimal, observedAt time.Time) (Quote, error) {
	if strings.TrimSpace(string(symbol)) == "" {
		return Quote{}, ErrEmptySymbol
	}
	if !price.IsPositive() {
		return Quote{}, fmt.Errorf("%w: got %s for %s", ErrNonPositivePrice, price.String(), symbol)
	}
	if observedAt.IsZero() {
		return Quote{}, ErrMissingObservation
	}

	return Quote{
		symbol: symbol,
		price:  price,
		// postgres timestamptz keeps microseconds
		observedAt: observedAt.UTC().Truncate(time.Microsecond),
	}, nil
}

func (q Quote) Symbol() Symbol {
	return q.symbol
}

func (q Quote) Price() decimal.Decimal {
	return q.price
}

func (q Quote) ObservedAt() time.Time {
	return q.observedAt
}

func (q Quote) String() string {
	return fmt.Sprintf("%s %s @ %s", q.symbol, q.price.String(), q.observedAt.Format(time.RFC3339))
}
