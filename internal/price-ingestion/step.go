package price_ingestion

import (
	"context"
	"errors"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/domain"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Outcome string

const (
	OutcomeWritten       Outcome = "written"
	OutcomeSkippedAbsent Outcome = "skipped_absent"
)

type StepConfig struct {
	// Source names the fetcher in errors it did not classify itself.
	Source         string
	FetchTimeout   time.Duration
	PersistTimeout time.Duration
}

// Step fetches one quote and stores it. It never retries; the caller
// decides what to do with a FetchError or PersistError.
type Step struct {
	Fetcher QuoteFetcher
	Writer  QuoteWriter
	Config  StepConfig
}

func NewStep(fetcher QuoteFetcher, writer QuoteWriter, cfg StepConfig) Step {
	return Step{
		Fetcher: fetcher,
		Writer:  writer,
		Config:  cfg,
	}
}

func (s Step) Run(ctx context.Context, symbol domain.Symbol) (Outcome, error) {
	if symbol == "" {
		return "", domain.ErrEmptySymbol
	}

	runID := uuid.New()
	ctx, span := otel.Tracer("price_ingestion").Start(ctx, "Step.Run", trace.WithAttributes(
		attribute.String("run_id", runID.String()),
		attribute.String("symbol", symbol.String()),
	))
	defer span.End()

	logger := log.WithContext(ctx).WithFields(log.Fields{
		"runID":  runID,
		"symbol": symbol,
	})

	quote, err := s.fetch(ctx, symbol)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", err
	}

	if quote == nil {
		logger.Info("no quote available, skipping write")
		span.SetAttributes(attribute.String("outcome", string(OutcomeSkippedAbsent)))
		return OutcomeSkippedAbsent, nil
	}

	err = s.persist(ctx, *quote)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return "", err
	}

	logger.WithFields(log.Fields{
		"price":      quote.Price().String(),
		"observedAt": quote.ObservedAt(),
	}).Info("stored quote")
	span.SetAttributes(attribute.String("outcome", string(OutcomeWritten)))

	return OutcomeWritten, nil
}

func (s Step) fetch(ctx context.Context, symbol domain.Symbol) (*domain.Quote, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.Config.FetchTimeout)
	defer cancel()

	quote, err := s.Fetcher.Fetch(ctx, symbol)
	if err != nil {
		if errors.As(err, &pipeline_errors.FetchError{}) || errors.Is(err, domain.ErrEmptySymbol) {
			return nil, err
		}
		return nil, pipeline_errors.FetchError{
			Symbol: symbol,
			Source: s.Config.Source,
			Cause:  err,
		}
	}

	return quote, nil
}

func (s Step) persist(ctx context.Context, quote domain.Quote) error {
	ctx, cancel := withOptionalTimeout(ctx, s.Config.PersistTimeout)
	defer cancel()

	err := s.Writer.Save(ctx, quote)
	if err != nil {
		if errors.As(err, &pipeline_errors.PersistError{}) {
			return err
		}
		return pipeline_errors.PersistError{
			Quote: quote,
			Cause: err,
		}
	}

	return nil
}

func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
