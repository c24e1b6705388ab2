package prices

import (
	"context"
	"errors"
	"net/http"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/config"
	"stockpipeline/internal/domain"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type previousCloseClient interface {
	GetPreviousCloseAgg(ctx context.Context, params *models.GetPreviousCloseAggParams, options ...models.RequestOption) (*models.GetPreviousCloseAggResponse, error)
}

// PolygonClient reads the previous session's close from polygon.io.
type PolygonClient struct {
	Client previousCloseClient
}

func NewPolygonClient(apiKey string, timeout time.Duration) PolygonClient {
	return PolygonClient{
		Client: newPolygonRestClient(apiKey, timeout),
	}
}

// newPolygonRestClient disables resty's built-in retries. A failed
// fetch is retried by the scheduler, never here.
func newPolygonRestClient(apiKey string, timeout time.Duration) *polygon.Client {
	c := polygon.NewWithClient(apiKey, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	c.HTTP.SetRetryCount(0)
	if timeout > 0 {
		c.HTTP.SetTimeout(timeout)
	}
	c.HTTP.SetLogger(log.StandardLogger())
	return c
}

func (c PolygonClient) Fetch(ctx context.Context, symbol domain.Symbol) (*domain.Quote, error) {
	if symbol == "" {
		return nil, domain.ErrEmptySymbol
	}

	ctx, span := otel.Tracer("prices").Start(ctx, "PolygonClient.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol.String()))

	log.Debugf("fetching previous close from polygon for symbol %s", symbol)

	response, err := c.Client.GetPreviousCloseAgg(ctx, &models.GetPreviousCloseAggParams{
		Ticker: symbol.String(),
	})
	if err != nil {
		var errResponse *models.ErrorResponse
		if errors.As(err, &errResponse) {
			if errResponse.StatusCode == http.StatusNotFound {
				log.WithField("symbol", symbol).Info("polygon has no data for symbol")
				return nil, nil
			}
			return nil, pipeline_errors.FetchError{
				Symbol:     symbol,
				Source:     config.SourcePolygon,
				StatusCode: errResponse.StatusCode,
				Cause:      err,
			}
		}
		return nil, pipeline_errors.FetchError{
			Symbol: symbol,
			Source: config.SourcePolygon,
			Cause:  err,
		}
	}

	if response == nil || len(response.Results) == 0 {
		log.WithField("symbol", symbol).Info("polygon has no data for symbol")
		return nil, nil
	}

	// results are ordered oldest first
	agg := response.Results[len(response.Results)-1]

	return newQuoteOrAbsent(
		config.SourcePolygon,
		symbol,
		decimal.NewFromFloat(agg.Close),
		time.Time(agg.Timestamp),
	)
}
