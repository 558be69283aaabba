package reward

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Period struct {
	From time.Time
	To   time.Time
}

func NewPeriod(from, to time.Time) (Period, error) {
	if to.Before(from) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{From: from, To: to}, nil
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// RequestCounts summarizes requests created in a report period.
type RequestCounts struct {
	Total    int
	Pending  int
	Approved int
}

type Totals struct {
	Requests    int
	Pending     int
	Approved    int
	Redemptions int
	Completed   int
	TotalValue  decimal.Decimal
}

type TypeBreakdown struct {
	RewardType RewardType
	Count      int
	Value      decimal.Decimal
}

type ApproverBreakdown struct {
	ApproverID   uuid.UUID
	ApproverName string
	Count        int
	Value        decimal.Decimal
}

type StockImpact struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Value       decimal.Decimal
}

type Report struct {
	Period      Period
	Totals      Totals
	ByType      []TypeBreakdown
	ByApprover  []ApproverBreakdown
	StockImpact []StockImpact
}

// BuildReport aggregates redemptions issued in the period. Stock impact only
// counts free-item grants that have been applied to a sale.
func BuildReport(period Period, requests RequestCounts, redemptions []*Redemption, approverNames map[uuid.UUID]string) Report {
	report := Report{
		Period: period,
		Totals: Totals{
			Requests:   requests.Total,
			Pending:    requests.Pending,
			Approved:   requests.Approved,
			TotalValue: decimal.Zero,
		},
	}

	byType := make(map[RewardType]*TypeBreakdown, len(Types))
	for _, t := range Types {
		byType[t] = &TypeBreakdown{RewardType: t, Value: decimal.Zero}
	}
	byApprover := map[uuid.UUID]*ApproverBreakdown{}
	impact := map[uuid.UUID]*StockImpact{}

	for _, r := range redemptions {
		value := r.Value()

		report.Totals.Redemptions++
		if r.status == RedemptionCompleted {
			report.Totals.Completed++
		}
		report.Totals.TotalValue = report.Totals.TotalValue.Add(value)

		if tb, ok := byType[r.rewardType]; ok {
			tb.Count++
			tb.Value = tb.Value.Add(value)
		}

		ab, ok := byApprover[r.approvedBy]
		if !ok {
			ab = &ApproverBreakdown{ApproverID: r.approvedBy, ApproverName: approverNames[r.approvedBy], Value: decimal.Zero}
			byApprover[r.approvedBy] = ab
		}
		ab.Count++
		ab.Value = ab.Value.Add(value)

		// Stock impact is the quantity granted on applied free-item rewards. An item
		// whose product was missing from the sale had no stock row to adjust at apply
		// time, yet it still left the shelf, so it is counted here all the same.
		if r.rewardType != TypeFreeItems || !r.stockDeducted {
			continue
		}
		for _, item := range r.freeItems {
			si, ok := impact[item.ProductID]
			if !ok {
				si = &StockImpact{ProductID: item.ProductID, ProductName: item.ProductName, Value: decimal.Zero}
				impact[item.ProductID] = si
			}
			si.Quantity += item.Quantity
			si.Value = si.Value.Add(item.TotalValue)
		}
	}

	for _, t := range Types {
		report.ByType = append(report.ByType, *byType[t])
	}

	for _, ab := range byApprover {
		report.ByApprover = append(report.ByApprover, *ab)
	}
	sort.Slice(report.ByApprover, func(i, j int) bool {
		a, b := report.ByApprover[i], report.ByApprover[j]
		if c := a.Value.Cmp(b.Value); c != 0 {
			return c > 0
		}
		return a.ApproverName < b.ApproverName
	})

	for _, si := range impact {
		report.StockImpact = append(report.StockImpact, *si)
	}
	sort.Slice(report.StockImpact, func(i, j int) bool {
		a, b := report.StockImpact[i], report.StockImpact[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.ProductName < b.ProductName
	})

	return report
}
