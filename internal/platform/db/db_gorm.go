package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_screener/internal/feature/screener/adapters"
)

// Config holds database connection settings.
type Config struct {
	DatabaseURL string // PostgreSQL DSN; when empty, SQLite is used
	SQLitePath  string // Path to the SQLite database file
}

// LoadConfig loads database configuration from environment variables.
func LoadConfig() Config {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./stocks.db"
	}
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  path,
	}
}

// Open はデータベースへ接続し、スキーマを準備して返します。
// DATABASE_URLが設定されていればPostgreSQLへ、なければローカルのSQLiteファイルへ接続します。
// テーブルは存在しなければ作成されます（マイグレーションツールは使いません）。
func Open(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.DatabaseURL != "" {
		// コンテナ環境ではDBの起動が遅れることがあるためリトライする
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return nil, err
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
	}

	// マイグレーション（stocksテーブル）
	if err := db.AutoMigrate(&adapters.StockModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenDB は環境変数の設定でデータベースを開きます。失敗は起動時エラーとして扱います。
func OpenDB() *gorm.DB {
	db, err := Open(LoadConfig())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	return db
}
