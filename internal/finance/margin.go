// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finance

// MarginResult holds profit figures for a cost and selling price.
type MarginResult struct {
	Profit float64 `json:"profit"`

	// Margin is profit as a percentage of the selling price.
	Margin float64 `json:"margin_pct"`

	// Markup is profit as a percentage of the cost.
	Markup float64 `json:"markup_pct"`
}

// Margin computes profit, margin and markup. Percentages whose denominator
// is not positive are reported as zero.
func Margin(cost, price float64) MarginResult {
	profit := price - cost
	r := MarginResult{Profit: profit}
	if price > 0 {
		r.Margin = profit / price * 100
	}
	if cost > 0 {
		r.Markup = profit / cost * 100
	}
	return r
}
