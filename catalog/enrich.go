package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/piquette/finance-go/quote"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
)

const (
	defaultQuoteAttempts = 3
	defaultQuoteDelay    = 500 * time.Millisecond
)

// QuoteEnricher fetches market prices for catalog records from their
// market symbols.
type QuoteEnricher struct {
	logger      *slog.Logger
	maxAttempts int
	baseDelay   time.Duration
}

// EnricherOption configures a QuoteEnricher.
type EnricherOption func(*QuoteEnricher)

// WithEnricherLogger sets the enricher's logger.
func WithEnricherLogger(logger *slog.Logger) EnricherOption {
	return func(e *QuoteEnricher) {
		e.logger = logger
	}
}

// WithQuoteRetry sets the retry policy for quote lookups.
func WithQuoteRetry(maxAttempts int, baseDelay time.Duration) EnricherOption {
	return func(e *QuoteEnricher) {
		e.maxAttempts = maxAttempts
		e.baseDelay = baseDelay
	}
}

// NewQuoteEnricher creates a QuoteEnricher with default retry policy.
func NewQuoteEnricher(opts ...EnricherOption) *QuoteEnricher {
	e := &QuoteEnricher{
		logger:      slog.Default(),
		maxAttempts: defaultQuoteAttempts,
		baseDelay:   defaultQuoteDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnrichETF fetches the current market price for the record's symbol
// and sets its Price field.
func (e *QuoteEnricher) EnrichETF(ctx context.Context, etf *core.ETF) error {
	if etf.Symbol == "" {
		return ErrNoSymbol
	}

	return RetryWithBackoff(ctx, func() error {
		q, err := quote.Get(etf.Symbol)
		if err != nil {
			return err
		}
		if q == nil {
			return errors.New("empty quote for " + etf.Symbol)
		}
		price := q.RegularMarketPrice
		etf.Price = &price
		return nil
	}, e.maxAttempts, e.baseDelay)
}

// RefreshPrices re-fetches prices for every record in the catalog that
// carries a market symbol. Records without a symbol are skipped, and a
// failed lookup skips just that record. Returns the number of records
// updated. tracker may be nil.
func (e *QuoteEnricher) RefreshPrices(ctx context.Context, repo storage.CatalogRepository, tracker *ProgressTracker) (int, error) {
	etfs, err := repo.AllETFs(ctx)
	if err != nil {
		return 0, err
	}

	if tracker != nil {
		tracker.Start()
	}

	updated := 0
	for _, etf := range etfs {
		if tracker != nil {
			tracker.Increment(1)
		}
		if etf.Symbol == "" {
			continue
		}

		if err := e.EnrichETF(ctx, etf); err != nil {
			if ctx.Err() != nil {
				return updated, ctx.Err()
			}
			e.logger.Warn("quote lookup failed", "symbol", etf.Symbol, "error", err)
			continue
		}

		if err := repo.UpdateETFs(ctx, []*core.ETF{etf}); err != nil {
			return updated, err
		}
		updated++
	}

	if tracker != nil {
		tracker.Finish()
	}
	e.logger.Info("price refresh complete", "updated", updated, "total", len(etfs))
	return updated, nil
}
