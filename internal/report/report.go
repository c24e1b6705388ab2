package report

import (
	"fmt"
	"io"
	"stockpipeline/internal/domain"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

type quoteRow struct {
	Symbol     string `csv:"symbol"`
	Price      string `csv:"price"`
	ObservedAt string `csv:"observed_at"`
}

func toRows(quotes []domain.Quote) []quoteRow {
	rows := make([]quoteRow, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, quoteRow{
			Symbol:     q.Symbol().String(),
			Price:      q.Price().String(),
			ObservedAt: q.ObservedAt().Format(time.RFC3339),
		})
	}
	return rows
}

func Write(w io.Writer, format string, quotes []domain.Quote) error {
	switch format {
	case "", FormatTable:
		return WriteTable(w, quotes)
	case FormatCSV:
		return WriteCSV(w, quotes)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func WriteTable(w io.Writer, quotes []domain.Quote) error {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Price", "Observed At"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, q := range quotes {
		table.Append([]string{
			q.Symbol().String(),
			fmt.Sprintf("$%s", p.Sprintf("%.2f", q.Price().InexactFloat64())),
			q.ObservedAt().Format(time.RFC3339),
		})
	}

	table.Render()
	return nil
}

func WriteCSV(w io.Writer, quotes []domain.Quote) error {
	rows := toRows(quotes)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
