package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		s, err := ParseSymbol("  aapl ")
		require.NoError(t, err)
		require.Equal(t, Symbol("AAPL"), s)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseSymbol("   ")
		require.True(t, errors.Is(err, ErrEmptySymbol), err)
	})
}

func TestNewQuote(t *testing.T) {
	observedAt := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		q, err := NewQuote("AAPL", decimal.RequireFromString("228.50"), observedAt)
		require.NoError(t, err)
		require.Equal(t, Symbol("AAPL"), q.Symbol())
		require.True(t, decimal.RequireFromString("228.5").Equal(q.Price()))
		require.Equal(t, observedAt, q.ObservedAt())
	})
	t.Run("zero price", func(t *testing.T) {
		_, err := NewQuote("AAPL", decimal.Zero, observedAt)
		require.True(t, errors.Is(err, ErrNonPositivePrice), err)
	})
	t.Run("negative price", func(t *testing.T) {
		_, err := NewQuote("AAPL", decimal.NewFromInt(-1), observedAt)
		require.True(t, errors.Is(err, ErrNonPositivePrice), err)
	})
	t.Run("empty symbol", func(t *testing.T) {
		_, err := NewQuote("", decimal.NewFromInt(1), observedAt)
		require.True(t, errors.Is(err, ErrEmptySymbol), err)
	})
	t.Run("missing observation time", func(t *testing.T) {
		_, err := NewQuote("AAPL", decimal.NewFromInt(1), time.Time{})
		require.True(t, errors.Is(err, ErrMissingObservation), err)
	})
	t.Run("observation normalized to utc micros", func(t *testing.T) {
		est := time.FixedZone("EST", -5*60*60)
		in := time.Date(2025, 8, 22, 9, 30, 0, 123456789, est)
		q, err := NewQuote("AAPL", decimal.NewFromInt(1), in)
		require.NoError(t, err)
		require.Equal(t, time.UTC, q.ObservedAt().Location())
		require.Equal(t, time.Date(2025, 8, 22, 14, 30, 0, 123456000, time.UTC), q.ObservedAt())
	})
}
