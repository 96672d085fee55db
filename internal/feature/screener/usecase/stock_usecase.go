// Package usecase implements the business logic for stock tracking operations.
package usecase

import (
	"context"

	"stock_screener/internal/feature/screener/domain"
	"stock_screener/internal/feature/screener/domain/entity"
)

// Filter holds the optional list conditions. A nil numeric field or false
// flag means the condition is not applied; supplied conditions are combined
// with logical AND.
type Filter struct {
	MinDividendYield *float64 // dividend_yield > value
	MaxForwardPE     *float64 // forward_pe < value
	AboveMA50        bool     // price > ma50
	AboveMA200       bool     // price > ma200
}

// StockRepository abstracts the persistence layer for tracked stocks.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	Create(ctx context.Context, symbol string) (entity.Stock, error)
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, f Filter) ([]entity.Stock, error)
	UpdateMetrics(ctx context.Context, id uint, m entity.Metrics) error
}

// StockUsecase provides business logic for create, delete, and list operations.
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase creates a new StockUsecase with the given repository.
func NewStockUsecase(r StockRepository) *StockUsecase {
	return &StockUsecase{repo: r}
}

// CreateStock persists a new tracked symbol and returns it with its assigned ID.
// The metric fields stay unset until an enrichment completes. Repeated symbols
// are tracked as independent records; no de-duplication is applied.
func (u *StockUsecase) CreateStock(ctx context.Context, symbol string) (entity.Stock, error) {
	return u.repo.Create(ctx, symbol)
}

// DeleteStock removes the stock with the given ID and returns its symbol.
// Returns domain.ErrStockNotFound when no such record exists.
func (u *StockUsecase) DeleteStock(ctx context.Context, id uint) (string, error) {
	stock, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if stock == nil {
		return "", domain.ErrStockNotFound
	}
	if _, err := u.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return stock.Symbol, nil
}

// ListStocks returns all tracked stocks matching the supplied filters.
func (u *StockUsecase) ListStocks(ctx context.Context, f Filter) ([]entity.Stock, error) {
	return u.repo.List(ctx, f)
}
