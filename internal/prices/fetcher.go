package prices

import (
	"fmt"
	"stockpipeline/internal/config"
	"stockpipeline/internal/domain"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

func NewFetcher(cfg config.Config) (Fetcher, error) {
	switch cfg.Source {
	case config.SourceAlphaVantage:
		return NewAlphaVantageClient(cfg.AlphaVantage.ApiKey, cfg.AlphaVantage.BaseURL, cfg.FetchTimeout), nil
	case config.SourcePolygon:
		return NewPolygonClient(cfg.Polygon.ApiKey, cfg.FetchTimeout), nil
	default:
		return nil, fmt.Errorf("unknown quote source '%s'", cfg.Source)
	}
}

// newQuoteOrAbsent builds the quote handed to the writer. Sources
// occasionally report zero or negative prices; those are logged and
// dropped instead of failing the run.
func newQuoteOrAbsent(source string, symbol domain.Symbol, price decimal.Decimal, observedAt time.Time) (*domain.Quote, error) {
	logger := log.WithFields(log.Fields{
		"source": source,
		"symbol": symbol,
	})

	if !price.IsPositive() {
		logger.WithField("price", price.String()).Warn("source returned a non-positive price, treating quote as absent")
		return nil, nil
	}

	quote, err := domain.NewQuote(symbol, price, observedAt)
	if err != nil {
		logger.WithError(err).Warn("source returned an unusable quote, treating quote as absent")
		return nil, nil
	}

	return &quote, nil
}
