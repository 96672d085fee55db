package dto

import (
	"fmt"

	"stock_screener/internal/feature/screener/domain/entity"
)

// StockItem はJSON一覧レスポンスの1銘柄分のDTOです。
// メトリクスはエンリッチメント前はnullになります。
type StockItem struct {
	ID            uint     `json:"id"`
	Symbol        string   `json:"symbol"`
	Price         *float64 `json:"price"`
	ForwardPE     *float64 `json:"forward_pe"`
	MA50          *float64 `json:"ma50"`
	MA200         *float64 `json:"ma200"`
	DividendYield *float64 `json:"dividend_yield"`
}

// NewStockItem はドメインエンティティからStockItemを作成します。
func NewStockItem(s entity.Stock) StockItem {
	return StockItem{
		ID:            s.ID,
		Symbol:        s.Symbol,
		Price:         s.Price,
		ForwardPE:     s.ForwardPE,
		MA50:          s.MA50,
		MA200:         s.MA200,
		DividendYield: s.DividendYield,
	}
}

// StockView はダッシュボード描画用にフォーマット済みの銘柄行です。
// 未設定のメトリクスは"-"として表示されます。
type StockView struct {
	ID            uint
	Symbol        string
	Price         string
	ForwardPE     string
	MA50          string
	MA200         string
	DividendYield string
}

// NewStockView はドメインエンティティから表示用のStockViewを作成します。
func NewStockView(s entity.Stock) StockView {
	return StockView{
		ID:            s.ID,
		Symbol:        s.Symbol,
		Price:         formatMetric(s.Price),
		ForwardPE:     formatMetric(s.ForwardPE),
		MA50:          formatMetric(s.MA50),
		MA200:         formatMetric(s.MA200),
		DividendYield: formatMetric(s.DividendYield),
	}
}

func formatMetric(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
