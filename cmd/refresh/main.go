package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"stock_screener/internal/app/di"
	"stock_screener/internal/feature/screener/adapters"
	"stock_screener/internal/feature/screener/usecase"
	"stock_screener/internal/platform/db"
	"stock_screener/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	gormDB := db.OpenDB()
	market := di.NewMarket()
	stockRepo := adapters.NewStockRepository(gormDB)

	enrichUC := usecase.NewEnrichUsecase(market, stockRepo)
	// 無認証エンドポイントを叩きすぎないように1分あたり8回に抑える
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	refreshUC := usecase.NewRefreshUsecase(enrichUC, stockRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := refreshUC.RefreshAll(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("refresh ok")
}
