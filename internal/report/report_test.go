package report

import (
	"bytes"
	"stockpipeline/internal/domain"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testQuotes(t *testing.T) []domain.Quote {
	q1, err := domain.NewQuote("AAPL", decimal.RequireFromString("1228.5"), time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	q2, err := domain.NewQuote("AAPL", decimal.RequireFromString("224.9"), time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return []domain.Quote{q1, q2}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, testQuotes(t))
	require.NoError(t, err)

	require.Equal(t,
		"symbol,price,observed_at\n"+
			"AAPL,1228.5,2025-08-22T00:00:00Z\n"+
			"AAPL,224.9,2025-08-21T00:00:00Z\n",
		buf.String(),
	)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, testQuotes(t))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "SYMBOL")
	require.Contains(t, out, "$1,228.50")
	require.Contains(t, out, "$224.90")
	require.Contains(t, out, "2025-08-21T00:00:00Z")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, nil))
	require.Equal(t, "symbol,price,observed_at\n", buf.String())

	require.Error(t, Write(&buf, "xml", nil))
}
