package main

import (
	"log"

	"github.com/joho/godotenv"

	"stock_screener/internal/app/di"
	"stock_screener/internal/app/router"
	"stock_screener/internal/feature/screener/adapters"
	screenerhandler "stock_screener/internal/feature/screener/transport/handler"
	"stock_screener/internal/feature/screener/usecase"
	"stock_screener/internal/platform/db"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// DB初期化（テーブルがなければ作成される）
	gormDB := db.OpenDB()

	// 外部市場データAPIクライアント
	market := di.NewMarket()

	// Repository
	stockRepo := adapters.NewStockRepository(gormDB)

	// Usecase
	stockUC := usecase.NewStockUsecase(stockRepo)
	enrichUC := usecase.NewEnrichUsecase(market, stockRepo)

	// Handler
	stockH := screenerhandler.NewStockHandler(stockUC, enrichUC)

	// ルータ生成
	r := router.NewRouter(stockH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
