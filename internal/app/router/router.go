package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	screenerhandler "stock_screener/internal/feature/screener/transport/handler"
	"stock_screener/internal/platform/http/handler"
)

// NewRouter はすべてのルートを登録したgin.Engineを生成します。
func NewRouter(stock *screenerhandler.StockHandler) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// ダッシュボード用テンプレート
	r.LoadHTMLGlob("web/templates/*")

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// ダッシュボード（HTML、フィルタはクエリパラメータ）
	r.GET("/", stock.Dashboard)

	// JSON API
	r.GET("/stocks", stock.List)
	r.POST("/stock", stock.Create)
	r.DELETE("/stock/:id", stock.Delete)

	return r
}
