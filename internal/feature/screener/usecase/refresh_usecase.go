package usecase

import (
	"context"
	"log/slog"

	"stock_screener/internal/shared/ratelimiter"
)

// Enricher は1レコード分のエンリッチメントを実行します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type Enricher interface {
	Enrich(ctx context.Context, id uint) error
}

// RefreshUsecase は保存済みの全銘柄のメトリクスを一括で取り直すユースケースを定義します。
type RefreshUsecase struct {
	enricher    Enricher
	repo        StockRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewRefreshUsecase は新しい RefreshUsecase を作成します。
func NewRefreshUsecase(enricher Enricher, repo StockRepository, rateLimiter ratelimiter.RateLimiterInterface) *RefreshUsecase {
	return &RefreshUsecase{enricher: enricher, repo: repo, rateLimiter: rateLimiter}
}

// RefreshAll は保存済みの全銘柄についてメトリクスを再取得します。
// 外部APIのレートリミットを考慮してリクエスト間に適切な待機時間を設けます。
func (ru *RefreshUsecase) RefreshAll(ctx context.Context) error {
	stocks, err := ru.repo.List(ctx, Filter{})
	if err != nil {
		return err
	}

	for _, s := range stocks {
		ru.rateLimiter.WaitIfNeeded()
		if err := ru.enricher.Enrich(ctx, s.ID); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to refresh stock metrics", "id", s.ID, "symbol", s.Symbol, "error", err)
			continue
		}
	}
	return nil
}
