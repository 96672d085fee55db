// Package handler はscreenerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_screener/internal/api"
	"stock_screener/internal/feature/screener/domain"
	"stock_screener/internal/feature/screener/domain/entity"
	"stock_screener/internal/feature/screener/transport/http/dto"
	"stock_screener/internal/feature/screener/usecase"
)

// StockUsecase は銘柄トラッキングのユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockUsecase interface {
	CreateStock(ctx context.Context, symbol string) (entity.Stock, error)
	DeleteStock(ctx context.Context, id uint) (string, error)
	ListStocks(ctx context.Context, f usecase.Filter) ([]entity.Stock, error)
}

// Enricher は作成後に非同期で実行するエンリッチメントのインターフェースです。
type Enricher interface {
	Enrich(ctx context.Context, id uint) error
}

// StockHandler は銘柄トラッキングのHTTPリクエストを処理します。
type StockHandler struct {
	uc       StockUsecase
	enricher Enricher
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase, enricher Enricher) *StockHandler {
	return &StockHandler{uc: uc, enricher: enricher}
}

// Create は銘柄を登録し、メトリクス取得をバックグラウンドにスケジュールするAPIです。
// レスポンスは取得完了を待たずに返るため、メトリクスは含まれません。
//
// エンドポイント例:
// POST /stock {"symbol": "AAPL"}
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	stock, err := h.uc.CreateStock(c.Request.Context(), req.Symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	// fire-and-forget。リクエストのキャンセルと切り離すためcontext.Background()を使う。
	// 結果は呼び出し元に返らず、失敗はログに残るだけ
	go func(id uint, symbol string) {
		if err := h.enricher.Enrich(context.Background(), id); err != nil {
			slog.Error("failed to enrich stock", "id", id, "symbol", symbol, "error", err)
		}
	}(stock.ID, stock.Symbol)

	c.JSON(http.StatusOK, api.StatusResponse{Code: "success", Message: "Stock created"})
}

// Delete は指定されたIDの銘柄を削除するAPIです。
// レコードが存在しない場合は404と構造化されたエラー応答を返します。
//
// エンドポイント例:
// DELETE /stock/42
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "id must be an integer"})
		return
	}

	symbol, err := h.uc.DeleteStock(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.StatusResponse{Code: "error", Message: "Stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.StatusResponse{
		Code:    "success",
		Message: fmt.Sprintf("Stock %s deleted successfully", symbol),
	})
}

// List は条件に一致する銘柄の一覧をJSONで返すAPIです。
//
// エンドポイント例:
// GET /stocks?dividend_yield=2.0&forward_pe=15&ma50=1
func (h *StockHandler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	stocks, err := h.uc.ListStocks(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.NewStockItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// parseFilter はクエリパラメータからフィルタ条件を組み立てます。
// dividend_yieldとforward_peは数値で、数値以外が与えられた場合はエラーになります。
// ma50とma200は値の有無だけを見るブールフィルタです。
func parseFilter(c *gin.Context) (usecase.Filter, error) {
	var f usecase.Filter

	if s := c.Query("dividend_yield"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return usecase.Filter{}, fmt.Errorf("dividend_yield must be numeric, got %q", s)
		}
		f.MinDividendYield = &v
	}
	if s := c.Query("forward_pe"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return usecase.Filter{}, fmt.Errorf("forward_pe must be numeric, got %q", s)
		}
		f.MaxForwardPE = &v
	}
	if c.Query("ma50") != "" {
		f.AboveMA50 = true
	}
	if c.Query("ma200") != "" {
		f.AboveMA200 = true
	}

	return f, nil
}
