package domain

import "github.com/shopspring/decimal"

// Summary aggregates the financial position across a list of orders.
// Blank or non-numeric fields count as zero, same as in Calculate.
type Summary struct {
	Orders          int     `json:"orders"`
	GrossSale       Numeric `json:"grossSale"`
	NetSales        Numeric `json:"netSales"`
	DarazCommission Numeric `json:"darazCommission"`
	Profit          Numeric `json:"profit"`
	Loss            Numeric `json:"loss"`
	NetPosition     Numeric `json:"netPosition"`
}

// Summarize totals gross, net, commission, profit and loss across the given
// orders. NetPosition is total profit minus total loss.
func Summarize(orders []Order) Summary {
	gross := decimal.Zero
	net := decimal.Zero
	commission := decimal.Zero
	profit := decimal.Zero
	loss := decimal.Zero

	for _, o := range orders {
		gross = gross.Add(o.GrossSale.Value())
		net = net.Add(o.NetSales.Value())
		commission = commission.Add(o.DarazCommission.Value())
		profit = profit.Add(o.Profit.Value())
		loss = loss.Add(o.Loss.Value())
	}

	return Summary{
		Orders:          len(orders),
		GrossSale:       NumericFrom(gross),
		NetSales:        NumericFrom(net),
		DarazCommission: NumericFrom(commission),
		Profit:          NumericFrom(profit),
		Loss:            NumericFrom(loss),
		NetPosition:     NumericFrom(profit.Sub(loss)),
	}
}
