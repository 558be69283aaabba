package reward

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID   uuid.UUID
	Name string
}

func NewCustomer(id uuid.UUID, name string) (Customer, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || name == "" {
		return Customer{}, ErrInvalidCustomer
	}
	return Customer{ID: id, Name: name}, nil
}

// FreeItem is a product handed out at zero cost. TotalValue is computed by the
// caller when the reward is requested and is never re-priced.
type FreeItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

func NewFreeItem(productID uuid.UUID, productName string, quantity int, totalValue decimal.Decimal) (FreeItem, error) {
	if productID == uuid.Nil || quantity <= 0 {
		return FreeItem{}, ErrInvalidFreeItem
	}
	return FreeItem{
		ProductID:   productID,
		ProductName: strings.TrimSpace(productName),
		Quantity:    quantity,
		TotalValue:  totalValue,
	}, nil
}

// SaleItem is a line of the in-progress sale as seen by the checkout, including
// the on-hand stock the checkout read for the product.
type SaleItem struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Stock       int
}

func NewSaleItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity, stock int) (SaleItem, error) {
	if productID == uuid.Nil || quantity <= 0 {
		return SaleItem{}, ErrInvalidSaleItem
	}
	return SaleItem{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Stock:       stock,
	}, nil
}

func (s SaleItem) LineTotal() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// StockAdjustment is the absolute stock level a product must be set to.
type StockAdjustment struct {
	ProductID uuid.UUID
	NewStock  int
}

func cloneFreeItems(items []FreeItem) []FreeItem {
	if items == nil {
		return nil
	}
	out := make([]FreeItem, len(items))
	copy(out, items)
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
