package prices

import (
	"context"
	"stockpipeline/internal/domain"
)

// Fetcher returns the current quote for symbol. A nil quote with a
// nil error means the source has no usable data for the symbol.
type Fetcher interface {
	Fetch(ctx context.Context, symbol domain.Symbol) (*domain.Quote, error)
}
