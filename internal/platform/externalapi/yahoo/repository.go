package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stock_screener/internal/feature/screener/domain/entity"
	"stock_screener/internal/feature/screener/usecase"
	"stock_screener/internal/platform/externalapi/yahoo/dto"
)

// YahooMarket はYahoo Finance外部APIから銘柄サマリーを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetSummaryDetail はquoteSummaryエンドポイントのsummaryDetailモジュールを取得し、
// entity.SummaryDetailとして返します。
// dividendYield以外のフィールドは必須で、欠落している場合はエラーになります。
func (y *YahooMarket) GetSummaryDetail(ctx context.Context, symbol string) (entity.SummaryDetail, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("modules", "summaryDetail")

	// URLを生成
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.SummaryDetail{}, err
	}
	// YahooはUser-Agentのないリクエストを拒否することがある
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stock-screener/1.0)")

	// リクエストを実行
	res, err := y.client.Do(req)
	if err != nil {
		return entity.SummaryDetail{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.SummaryDetail{}, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.QuoteSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.SummaryDetail{}, err
	}
	if body.QuoteSummary.Error != nil {
		return entity.SummaryDetail{}, fmt.Errorf("yahoo: %s", body.QuoteSummary.Error.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return entity.SummaryDetail{}, fmt.Errorf("yahoo: no result for symbol %q", symbol)
	}

	sd := body.QuoteSummary.Result[0].SummaryDetail

	// 前日終値を取り出し
	prev, err := requireValue(sd.PreviousClose, "previousClose", symbol)
	if err != nil {
		return entity.SummaryDetail{}, err
	}
	// 予想PERを取り出し
	fpe, err := requireValue(sd.ForwardPE, "forwardPE", symbol)
	if err != nil {
		return entity.SummaryDetail{}, err
	}
	// 50日移動平均を取り出し
	ma50, err := requireValue(sd.FiftyDayAverage, "fiftyDayAverage", symbol)
	if err != nil {
		return entity.SummaryDetail{}, err
	}
	// 200日移動平均を取り出し
	ma200, err := requireValue(sd.TwoHundredDayAverage, "twoHundredDayAverage", symbol)
	if err != nil {
		return entity.SummaryDetail{}, err
	}

	// ドメインエンティティに変換
	out := entity.SummaryDetail{
		PreviousClose:        prev,
		ForwardPE:            fpe,
		FiftyDayAverage:      ma50,
		TwoHundredDayAverage: ma200,
	}
	// 配当利回りは無配銘柄ではレスポンスに含まれない
	if sd.DividendYield != nil {
		v := sd.DividendYield.Raw
		out.DividendYield = &v
	}
	return out, nil
}

func requireValue(v *dto.Value, field, symbol string) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("yahoo: %s missing for symbol %q", field, symbol)
	}
	return v.Raw, nil
}
