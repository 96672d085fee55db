package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_screener/internal/api"
	"stock_screener/internal/feature/screener/transport/http/dto"
)

// Dashboard はフィルタ適用済みの銘柄一覧をHTMLページとして描画します。
// 入力されたフィルタ値はフォームに再表示するためにそのままテンプレートへ渡します。
//
// エンドポイント例:
// GET /?dividend_yield=2.0&ma200=1
func (h *StockHandler) Dashboard(c *gin.Context) {
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

	views := make([]dto.StockView, 0, len(stocks))
	for _, s := range stocks {
		views = append(views, dto.NewStockView(s))
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"stocks":         views,
		"dividend_yield": c.Query("dividend_yield"),
		"forward_pe":     c.Query("forward_pe"),
		"ma50":           c.Query("ma50"),
		"ma200":          c.Query("ma200"),
	})
}
