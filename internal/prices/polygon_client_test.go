package prices

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/config"
	"sync/atomic"
	"testing"
	"time"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakePreviousCloseClient struct {
	ticker   string
	response *models.GetPreviousCloseAggResponse
	err      error
}

func (f *fakePreviousCloseClient) GetPreviousCloseAgg(ctx context.Context, params *models.GetPreviousCloseAggParams, options ...models.RequestOption) (*models.GetPreviousCloseAggResponse, error) {
	f.ticker = params.Ticker
	return f.response, f.err
}

func TestPolygonClient_Fetch(t *testing.T) {
	closedAt := time.Date(2025, 8, 22, 20, 0, 0, 0, time.UTC)

	t.Run("returns previous close", func(t *testing.T) {
		fake := &fakePreviousCloseClient{
			response: &models.GetPreviousCloseAggResponse{
				Results: []models.Agg{
					{Close: 227.76, Timestamp: models.Millis(closedAt)},
				},
			},
		}
		client := PolygonClient{Client: fake}

		q, err := client.Fetch(context.Background(), "AAPL")
		require.NoError(t, err)
		require.NotNil(t, q)
		require.Equal(t, "AAPL", fake.ticker)
		require.True(t, decimal.RequireFromString("227.76").Equal(q.Price()), q.Price().String())
		require.True(t, closedAt.Equal(q.ObservedAt()))
	})

	t.Run("no results is absent", func(t *testing.T) {
		client := PolygonClient{Client: &fakePreviousCloseClient{
			response: &models.GetPreviousCloseAggResponse{},
		}}

		q, err := client.Fetch(context.Background(), "ZZZZ")
		require.NoError(t, err)
		require.Nil(t, q)
	})

	t.Run("not found is absent", func(t *testing.T) {
		client := PolygonClient{Client: &fakePreviousCloseClient{
			err: &models.ErrorResponse{StatusCode: http.StatusNotFound},
		}}

		q, err := client.Fetch(context.Background(), "ZZZZ")
		require.NoError(t, err)
		require.Nil(t, q)
	})

	t.Run("server error is fetch error", func(t *testing.T) {
		client := PolygonClient{Client: &fakePreviousCloseClient{
			err: &models.ErrorResponse{StatusCode: http.StatusInternalServerError},
		}}

		q, err := client.Fetch(context.Background(), "AAPL")
		require.Nil(t, q)

		var fetchErr pipeline_errors.FetchError
		require.True(t, errors.As(err, &fetchErr))
		require.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
		require.Equal(t, config.SourcePolygon, fetchErr.Source)
	})

	t.Run("transport error is fetch error", func(t *testing.T) {
		client := PolygonClient{Client: &fakePreviousCloseClient{
			err: errors.New("connection reset by peer"),
		}}

		q, err := client.Fetch(context.Background(), "AAPL")
		require.Nil(t, q)
		require.True(t, errors.As(err, &pipeline_errors.FetchError{}))
	})
}

func TestNewPolygonClient(t *testing.T) {
	t.Run("dropped connection is one request", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				conn.Close()
			}
		}))
		t.Cleanup(server.Close)

		restClient := newPolygonRestClient("key", 5*time.Second)
		restClient.HTTP.SetBaseURL(server.URL)
		client := PolygonClient{Client: restClient}

		q, err := client.Fetch(context.Background(), "AAPL")
		require.Nil(t, q)
		require.True(t, errors.As(err, &pipeline_errors.FetchError{}), err)
		require.Equal(t, int32(1), requests.Load())
	})

	t.Run("uses fetch timeout", func(t *testing.T) {
		restClient := newPolygonRestClient("key", 3*time.Second)
		require.Equal(t, 0, restClient.HTTP.RetryCount)
		require.Equal(t, 3*time.Second, restClient.HTTP.GetClient().Timeout)
	})
}

func TestNewFetcher(t *testing.T) {
	f, err := NewFetcher(config.Config{Source: config.SourceAlphaVantage, FetchTimeout: time.Second})
	require.NoError(t, err)
	require.IsType(t, AlphaVantageClient{}, f)

	f, err = NewFetcher(config.Config{Source: config.SourcePolygon, FetchTimeout: time.Second})
	require.NoError(t, err)
	require.IsType(t, PolygonClient{}, f)

	_, err = NewFetcher(config.Config{Source: "yahoo"})
	require.Error(t, err)
}
