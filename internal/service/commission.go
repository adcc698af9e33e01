package service

import (
	"receipt-desk/internal/models"

	"github.com/shopspring/decimal"
)

// Payout splits a gross deposit into the platform fee and the partner's net.
// Fee + Net always equals Gross exactly.
type Payout struct {
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal
}

// ComputePayout applies feePercent to gross without rounding.
func ComputePayout(gross, feePercent float64) Payout {
	return payoutOf(decimal.NewFromFloat(gross), feePercent)
}

func payoutOf(gross decimal.Decimal, feePercent float64) Payout {
	fee := gross.Mul(decimal.NewFromFloat(feePercent)).Shift(-2)
	return Payout{
		Gross: gross,
		Fee:   fee,
		Net:   gross.Sub(fee),
	}
}

type Aggregates struct {
	TotalPending    decimal.Decimal
	TotalApproved   decimal.Decimal
	EstimatedProfit decimal.Decimal
}

// ComputeAggregates sums pending and approved amounts and the profit on the
// approved ones. Rejected transactions are ignored.
func ComputeAggregates(transactions []*models.Transaction) Aggregates {
	agg := Aggregates{
		TotalPending:    decimal.Zero,
		TotalApproved:   decimal.Zero,
		EstimatedProfit: decimal.Zero,
	}

	for _, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Status {
		case models.StatusPending:
			agg.TotalPending = agg.TotalPending.Add(amount)
		case models.StatusApproved:
			agg.TotalApproved = agg.TotalApproved.Add(amount)
			agg.EstimatedProfit = agg.EstimatedProfit.Add(payoutOf(amount, tx.ProfitPercentage).Fee)
		}
	}
	return agg
}
