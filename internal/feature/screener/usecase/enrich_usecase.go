package usecase

import (
	"context"

	"stock_screener/internal/feature/screener/domain"
	"stock_screener/internal/feature/screener/domain/entity"
)

// MarketRepository は外部の市場データソースを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetSummaryDetail(ctx context.Context, symbol string) (entity.SummaryDetail, error)
}

// EnrichUsecase は外部APIから市場メトリクスを取得し、レコードに書き戻すユースケースです。
type EnrichUsecase struct {
	market MarketRepository
	repo   StockRepository
}

// NewEnrichUsecase は新しい EnrichUsecase を作成します。
func NewEnrichUsecase(market MarketRepository, repo StockRepository) *EnrichUsecase {
	return &EnrichUsecase{market: market, repo: repo}
}

// Enrich は指定されたIDのレコードの銘柄について外部ソースへ1回問い合わせ、
// 5つのメトリクスを1回の書き込みで上書きします。
// 途中で失敗した場合はリトライせず、レコードは古い/未設定の値のまま残ります。
func (eu *EnrichUsecase) Enrich(ctx context.Context, id uint) error {
	stock, err := eu.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrStockNotFound
	}

	detail, err := eu.market.GetSummaryDetail(ctx, stock.Symbol)
	if err != nil {
		return err
	}

	// 配当利回りはパーセントで保存する。ソースが省略した場合は0.00
	yield := 0.0
	if detail.DividendYield != nil {
		yield = *detail.DividendYield * 100
	}

	return eu.repo.UpdateMetrics(ctx, id, entity.Metrics{
		Price:         detail.PreviousClose,
		ForwardPE:     detail.ForwardPE,
		MA50:          detail.FiftyDayAverage,
		MA200:         detail.TwoHundredDayAverage,
		DividendYield: yield,
	})
}
