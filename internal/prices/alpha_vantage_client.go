package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/config"
	"stockpipeline/internal/domain"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRateLimited = errors.New("alpha vantage rejected the request")

type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

func NewAlphaVantageClient(apiKey string, baseURL string, timeout time.Duration) AlphaVantageClient {
	return AlphaVantageClient{
		HttpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		ApiKey:  apiKey,
		BaseURL: baseURL,
	}
}

type alphaVantageQuoteResult struct {
	GlobalQuote struct {
		Symbol           string `json:"symbol"`
		Open             string `json:"open"`
		High             string `json:"high"`
		Low              string `json:"low"`
		Price            string `json:"price"`
		Volume           string `json:"volume"`
		LatestTradingDay string `json:"latest trading day"`
		PreviousClose    string `json:"previous close"`
		Change           string `json:"change"`
		ChangePercent    string `json:"change percent"`
	} `json:"Global Quote"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

func (c AlphaVantageClient) Fetch(ctx context.Context, symbol domain.Symbol) (*domain.Quote, error) {
	if symbol == "" {
		return nil, domain.ErrEmptySymbol
	}

	ctx, span := otel.Tracer("prices").Start(ctx, "AlphaVantageClient.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol.String()))

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = "https://www.alphavantage.co/query"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, c.fetchErr(symbol, 0, err)
	}
	q := req.URL.Query()
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol.String())
	q.Set("apikey", c.ApiKey)
	req.URL.RawQuery = q.Encode()

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, c.fetchErr(symbol, 0, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, c.fetchErr(symbol, response.StatusCode, fmt.Errorf("unexpected response status %s", response.Status))
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, c.fetchErr(symbol, response.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	// API uses odd format which includes numbers in JSON keys
	cleanedResponseBytes := cleanResponseBody(responseBytes)
	if !json.Valid(cleanedResponseBytes) {
		return nil, c.fetchErr(symbol, response.StatusCode, errors.New("response body is not json"))
	}

	logger := log.WithFields(log.Fields{
		"source": config.SourceAlphaVantage,
		"symbol": symbol,
	})

	var responseJson alphaVantageQuoteResult
	err = json.Unmarshal(cleanedResponseBytes, &responseJson)
	if err != nil {
		logger.WithError(err).Warn("unexpected response shape, treating quote as absent")
		return nil, nil
	}

	if responseJson.Note != "" || responseJson.Information != "" {
		msg := strings.TrimSpace(responseJson.Note + " " + responseJson.Information)
		return nil, c.fetchErr(symbol, response.StatusCode, fmt.Errorf("%w: %s", ErrRateLimited, msg))
	}
	if responseJson.ErrorMessage != "" {
		logger.WithField("message", responseJson.ErrorMessage).Warn("source rejected symbol, treating quote as absent")
		return nil, nil
	}

	quote := responseJson.GlobalQuote
	if quote.Symbol == "" {
		logger.Info("source has no quote for symbol")
		return nil, nil
	}
	if !strings.EqualFold(quote.Symbol, symbol.String()) {
		logger.WithField("returnedSymbol", quote.Symbol).Warn("source returned a quote for another symbol, treating quote as absent")
		return nil, nil
	}

	price, err := decimal.NewFromString(quote.Price)
	if err != nil {
		logger.WithError(err).Warn("could not parse price, treating quote as absent")
		return nil, nil
	}

	latestTradingDay, err := time.Parse(time.DateOnly, quote.LatestTradingDay)
	if err != nil {
		logger.WithError(err).Warn("could not parse latest trading day, treating quote as absent")
		return nil, nil
	}

	return newQuoteOrAbsent(config.SourceAlphaVantage, symbol, price, latestTradingDay)
}

func (c AlphaVantageClient) fetchErr(symbol domain.Symbol, statusCode int, err error) error {
	return pipeline_errors.FetchError{
		Symbol:     symbol,
		Source:     config.SourceAlphaVantage,
		StatusCode: statusCode,
		Cause:      err,
	}
}

var numberedKey = regexp.MustCompile("\"[0-9]+\\. ")

func cleanResponseBody(bytes []byte) []byte {
	return numberedKey.ReplaceAll(bytes, []byte("\""))
}
