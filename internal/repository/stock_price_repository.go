package repository

import (
	"context"
	"database/sql"
	"fmt"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/db/models/postgres/public/model"
	. "stockpipeline/internal/db/models/postgres/public/table"
	db "stockpipeline/internal/db/query"
	"stockpipeline/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

type StockPriceRepository interface {
	Save(ctx context.Context, quote domain.Quote) error
	ListRecent(ctx context.Context, symbol domain.Symbol, limit int) ([]domain.Quote, error)
}

type stockPriceRepositoryHandler struct {
	DB  Querier
	now func() time.Time
}

func NewStockPriceRepository(db Querier) StockPriceRepository {
	return stockPriceRepositoryHandler{
		DB:  db,
		now: time.Now,
	}
}

// Save upserts on (symbol, observed_at), so delivering the same quote
// twice leaves a single row.
func (h stockPriceRepositoryHandler) Save(ctx context.Context, quote domain.Quote) error {
	ctx, span := otel.Tracer("repository").Start(ctx, "StockPriceRepository.Save")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", quote.Symbol().String()))

	stmt := upsertStockPriceStmt(stockPriceToDb(quote, h.now().UTC()))

	result := model.StockPrice{}
	err := stmt.QueryContext(ctx, h.DB, &result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert failed")
		return pipeline_errors.PersistError{
			Quote: quote,
			Code:  db.SQLState(err),
			Cause: fmt.Errorf("failed to upsert stock price: %w", err),
		}
	}

	log.WithFields(log.Fields{
		"stockPriceID": result.StockPriceID,
		"symbol":       result.Symbol,
		"observedAt":   result.ObservedAt,
	}).Debug("stock price upserted")

	return nil
}

func upsertStockPriceStmt(m model.StockPrice) postgres.InsertStatement {
	t := StockPrice
	return t.INSERT(t.MutableColumns).
		MODEL(m).
		ON_CONFLICT(t.Symbol, t.ObservedAt).
		DO_UPDATE(
			postgres.SET(
				t.Price.SET(t.EXCLUDED.Price),
				t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			),
		).
		RETURNING(t.AllColumns)
}

func (h stockPriceRepositoryHandler) ListRecent(ctx context.Context, symbol domain.Symbol, limit int) ([]domain.Quote, error) {
	query := listRecentStmt(symbol, limit)

	result := []model.StockPrice{}
	err := query.QueryContext(ctx, h.DB, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	return stockPricesFromDb(result)
}

func listRecentStmt(symbol domain.Symbol, limit int) postgres.SelectStatement {
	if limit <= 0 {
		limit = 10
	}
	return StockPrice.SELECT(StockPrice.AllColumns).
		WHERE(StockPrice.Symbol.EQ(postgres.String(symbol.String()))).
		ORDER_BY(StockPrice.ObservedAt.DESC()).
		LIMIT(int64(limit))
}

func stockPriceToDb(q domain.Quote, now time.Time) model.StockPrice {
	return model.StockPrice{
		Symbol:     q.Symbol().String(),
		Price:      q.Price(),
		ObservedAt: q.ObservedAt(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func stockPricesFromDb(rows []model.StockPrice) ([]domain.Quote, error) {
	out := make([]domain.Quote, len(rows))
	for i, r := range rows {
		q, err := domain.NewQuote(domain.Symbol(r.Symbol), r.Price, r.ObservedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid stock price row %d: %w", r.StockPriceID, err)
		}
		out[i] = q
	}
	return out, nil
}
