// Package adapters はscreenerフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stock_screener/internal/feature/screener/domain/entity"
	"stock_screener/internal/feature/screener/usecase"
)

// stockGorm はStockRepositoryインターフェースのGORM実装です。
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// StockModel はstocksテーブルの行を表すGORMモデルです。
// メトリクス列は最初のエンリッチメントが完了するまでNULLです。
type StockModel struct {
	ID            uint     `gorm:"primaryKey"`
	Symbol        string   `gorm:"size:32;not null;index"`
	Price         *float64 `gorm:"column:price"`
	ForwardPE     *float64 `gorm:"column:forward_pe"`
	MA50          *float64 `gorm:"column:ma50"`
	MA200         *float64 `gorm:"column:ma200"`
	DividendYield *float64 `gorm:"column:dividend_yield"`
}

func (StockModel) TableName() string {
	return "stocks"
}

func toEntity(m StockModel) entity.Stock {
	return entity.Stock{
		ID:            m.ID,
		Symbol:        m.Symbol,
		Price:         m.Price,
		ForwardPE:     m.ForwardPE,
		MA50:          m.MA50,
		MA200:         m.MA200,
		DividendYield: m.DividendYield,
	}
}

// Create はシンボルのみを設定した新しい行を挿入し、採番されたIDを含むエンティティを返します。
func (r *stockGorm) Create(ctx context.Context, symbol string) (entity.Stock, error) {
	m := StockModel{Symbol: symbol}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entity.Stock{}, err
	}
	return toEntity(m), nil
}

// FindByID はIDで1件を検索します。存在しない場合は(nil, nil)を返します。
func (r *stockGorm) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var m StockModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e := toEntity(m)
	return &e, nil
}

// Delete は指定されたIDの行を削除し、実際に削除されたかどうかを返します。
func (r *stockGorm) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&StockModel{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List はフィルタ条件にすべて一致する銘柄をID順に返します。
func (r *stockGorm) List(ctx context.Context, f usecase.Filter) ([]entity.Stock, error) {
	q := r.db.WithContext(ctx).Model(&StockModel{})
	if f.MinDividendYield != nil {
		q = q.Where("dividend_yield > ?", *f.MinDividendYield)
	}
	if f.MaxForwardPE != nil {
		q = q.Where("forward_pe < ?", *f.MaxForwardPE)
	}
	if f.AboveMA50 {
		q = q.Where("price > ma50")
	}
	if f.AboveMA200 {
		q = q.Where("price > ma200")
	}

	var rows []StockModel
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Stock, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// UpdateMetrics は既存行の5つのメトリクス列を1回のUPDATEで上書きします。
func (r *stockGorm) UpdateMetrics(ctx context.Context, id uint, m entity.Metrics) error {
	return r.db.WithContext(ctx).
		Model(&StockModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"price":          m.Price,
			"forward_pe":     m.ForwardPE,
			"ma50":           m.MA50,
			"ma200":          m.MA200,
			"dividend_yield": m.DividendYield,
		}).Error
}
