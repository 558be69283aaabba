package reward

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount computes the total discount a grant gives on a sale. No lower or upper
// bound is applied to the result.
func Discount(t RewardType, amount *decimal.Decimal, freeItems []FreeItem, saleItems []SaleItem) decimal.Decimal {
	switch t {
	case TypeFreeItems:
		return sumFreeItemValue(freeItems)
	case TypeCashDiscount:
		if amount == nil {
			return decimal.Zero
		}
		return *amount
	case TypePercentageOff:
		if amount == nil {
			return decimal.Zero
		}
		return Subtotal(saleItems).Mul(*amount).Div(hundred)
	default:
		return decimal.Zero
	}
}

func Subtotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func sumFreeItemValue(items []FreeItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalValue)
	}
	return total
}

// freeItemStockAdjustments matches free items against the sale by product id. The
// new level is based on the stock the checkout saw, so free items for products
// not yet scanned are skipped.
func freeItemStockAdjustments(freeItems []FreeItem, saleItems []SaleItem) []StockAdjustment {
	byProduct := make(map[uuid.UUID]SaleItem, len(saleItems))
	for _, item := range saleItems {
		if _, seen := byProduct[item.ProductID]; !seen {
			byProduct[item.ProductID] = item
		}
	}

	var out []StockAdjustment
	for _, free := range freeItems {
		sale, ok := byProduct[free.ProductID]
		if !ok {
			continue
		}
		out = append(out, StockAdjustment{
			ProductID: free.ProductID,
			NewStock:  sale.Stock - free.Quantity,
		})
	}
	return out
}
