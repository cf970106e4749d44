// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 25000.0, ParseNumber("25000"))
	assert.Equal(t, 8.5, ParseNumber(" 8.5 "))
	assert.Equal(t, 0.0, ParseNumber("abc"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("Inf"))
}

func TestLoan(t *testing.T) {
	tests := []struct {
		name                         string
		principal, rate, years       float64
		wantMonths                   int
		wantMonthly, wantTotal, wantInterest float64
	}{
		{
			name:      "default form values",
			principal: 25000, rate: 8.5, years: 5,
			wantMonths:  60,
			wantMonthly: 512.91, wantTotal: 30774.6, wantInterest: 5774.6,
		},
		{
			name:      "zero rate spreads principal",
			principal: 1200, rate: 0, years: 1,
			wantMonths:  12,
			wantMonthly: 100, wantTotal: 1200, wantInterest: 0,
		},
		{
			name:      "non-positive principal is all zeros",
			principal: -5, rate: 5, years: 2,
			wantMonths: 24,
		},
		{
			name:      "term shorter than a month rounds up to one",
			principal: 1000, rate: 0, years: 0,
			wantMonths:  1,
			wantMonthly: 1000, wantTotal: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Loan(tt.principal, tt.rate, tt.years)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMonths, got.Months)
			assert.InDelta(t, tt.wantMonthly, got.MonthlyPayment, 0.01)
			assert.InDelta(t, tt.wantTotal, got.TotalPayment, 0.5)
			assert.InDelta(t, tt.wantInterest, got.TotalInterest, 0.5)
		})
	}
}

func TestSchedule(t *testing.T) {
	rows, err := Schedule(25000, 8.5, 5)
	require.NoError(t, err)
	require.Len(t, rows, 60)

	loan, err := Loan(25000, 8.5, 5)
	require.NoError(t, err)
	var paid, interest float64
	for i, r := range rows {
		assert.Equal(t, i+1, r.Month)
		paid += r.Payment
		interest += r.Interest
	}
	assert.InDelta(t, 0, rows[len(rows)-1].Balance, 1e-9)
	assert.InDelta(t, loan.TotalPayment, paid, 0.01)
	assert.InDelta(t, loan.TotalInterest, interest, 0.01)
	assert.Greater(t, rows[0].Interest, rows[59].Interest)

	rows, err = Schedule(0, 5, 1)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestLoanTermLimit(t *testing.T) {
	tests := []struct {
		name       string
		years      float64
		wantMonths int
		wantErr    bool
	}{
		{name: "hundred years", years: 100, wantMonths: MaxMonths},
		{name: "just over the limit", years: 100.1, wantErr: true},
		{name: "huge term", years: 1e15, wantErr: true},
		{name: "beyond int range", years: 1e19, wantErr: true},
		{name: "not a number", years: math.NaN(), wantErr: true},
		{name: "negative infinity is one month", years: math.Inf(-1), wantMonths: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Schedule(1000, 5, tt.years)
			_, loanErr := Loan(1000, 5, tt.years)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTermTooLong)
				assert.ErrorIs(t, loanErr, ErrTermTooLong)
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			require.NoError(t, loanErr)
			assert.Len(t, rows, tt.wantMonths)
		})
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name        string
		cost, price float64
		want        MarginResult
	}{
		{name: "default form values", cost: 40, price: 65, want: MarginResult{Profit: 25, Margin: 25.0 / 65 * 100, Markup: 62.5}},
		{name: "loss", cost: 50, price: 40, want: MarginResult{Profit: -10, Margin: -25, Markup: -20}},
		{name: "zero price", cost: 10, price: 0, want: MarginResult{Profit: -10, Markup: -100}},
		{name: "zero cost", cost: 0, price: 10, want: MarginResult{Profit: 10, Margin: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Margin(tt.cost, tt.price)
			assert.InDelta(t, tt.want.Profit, got.Profit, 1e-9)
			assert.InDelta(t, tt.want.Margin, got.Margin, 1e-9)
			assert.InDelta(t, tt.want.Markup, got.Markup, 1e-9)
		})
	}
}
