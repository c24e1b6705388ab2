package price_ingestion

import (
	"context"
	"stockpipeline/internal/domain"
)

//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=price_ingestion

type QuoteFetcher interface {
	Fetch(ctx context.Context, symbol domain.Symbol) (*domain.Quote, error)
}

type QuoteWriter interface {
	Save(ctx context.Context, quote domain.Quote) error
}
