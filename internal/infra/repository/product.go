package repository

import (
	"context"

	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/repository/product.go -package=repositorymock

type ProductWriteQueries interface {
	SetProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.SetProductStockParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

// SetStock writes the absolute on-hand quantity. Negative values are stored as given.
func (r *ProductRepository) SetStock(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, stock int) error {
	value, err := pgconv.IntToInt32(stock)
	if err != nil {
		return infra.WrapRepoErr("stock out of range", err, infra.KindDBFailure)
	}

	affected, err := r.queries.SetProductStock(ctx, tx, sqlc.SetProductStockParams{ID: productID, Stock: value})
	if err != nil {
		return infra.WrapRepoErr("failed to set product stock", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
