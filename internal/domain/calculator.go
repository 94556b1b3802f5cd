package domain

import "github.com/shopspring/decimal"

// Calculate normalizes a draft order by filling in its derived financial
// fields. It is pure: the input draft is not mutated, malformed numeric text
// never fails (it degrades to zero for computation while the original text is
// preserved verbatim), and re-normalizing a normalized order is a no-op.
//
// Rules:
//   - purchasing total = Σ purchasingPrice×unitsSold over the product rows,
//     blank or unparseable cells counting as zero;
//   - darazCommission = grossSale − netSales, asserted only when both sides
//     are present and parse to non-zero numbers (may be negative, not clamped);
//   - profit/loss = netSales − purchasing total, asserted only when netSales
//     parses; exactly one of the two is set, and a zero result counts as
//     profit, not loss.
func Calculate(draft Order) Order {
	order := draft.Clone()

	// Clear all derived fields up front so stale values from a previous
	// edit never survive a recomputation.
	order.DarazCommission = ""
	order.Profit = ""
	order.Loss = ""

	total := PurchasingTotal(order.Products)

	gross, grossOK := order.GrossSale.Number()
	net, netOK := order.NetSales.Number()

	if grossOK && netOK && !gross.IsZero() && !net.IsZero() {
		order.DarazCommission = NumericFrom(gross.Sub(net))
	}

	if netOK {
		result := net.Sub(total)
		if result.Sign() >= 0 {
			order.Profit = NumericFrom(result)
		} else {
			order.Loss = NumericFrom(result.Neg())
		}
	}

	return order
}

// PurchasingTotal sums purchasingPrice×unitsSold over the product rows.
// Blank or non-numeric cells count as zero.
func PurchasingTotal(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.PurchasingPrice.Value().Mul(p.UnitsSold.Value()))
	}
	return total
}
