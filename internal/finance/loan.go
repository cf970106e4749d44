// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package finance implements the loan and profit-margin calculators.
//
// Inputs arrive as text from the command line. Unlike the unit converter,
// these calculators treat unparseable numbers as zero, so a half-typed form
// still renders a (zero) result.
package finance

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxMonths is the longest term the calculators accept (100 years).
const MaxMonths = 1200

// ErrTermTooLong is returned for a term longer than MaxMonths.
var ErrTermTooLong = errors.New("loan term too long")

// LoanResult holds the totals for a fixed-rate amortizing loan.
type LoanResult struct {
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// Payment is one row of an amortization schedule.
type Payment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// ParseNumber parses s as a finite float, returning 0 for anything else.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// loanTerms normalises the inputs: the monthly rate, and the term in whole
// months, at least one and at most MaxMonths.
func loanTerms(annualRatePct, years float64) (rate float64, months int, err error) {
	span := math.Floor(years * 12)
	if math.IsNaN(span) || span > MaxMonths {
		return 0, 0, fmt.Errorf("%w: %v years exceeds %d months", ErrTermTooLong, years, MaxMonths)
	}
	months = 1
	if span > 1 {
		months = int(span)
	}
	return annualRatePct / 100 / 12, months, nil
}

// Loan computes the monthly payment, total paid, and total interest. A
// principal of zero or less yields an all-zero result; a zero rate spreads
// the principal evenly.
func Loan(principal, annualRatePct, years float64) (LoanResult, error) {
	rate, months, err := loanTerms(annualRatePct, years)
	if err != nil {
		return LoanResult{}, err
	}
	if principal <= 0 {
		return LoanResult{Months: months}, nil
	}
	monthly := monthlyPayment(principal, rate, months)
	total := monthly * float64(months)
	return LoanResult{
		Months:         months,
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}, nil
}

func monthlyPayment(principal, rate float64, months int) float64 {
	if rate == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+rate, float64(months))
	return principal * rate * growth / (growth - 1)
}

// Schedule returns the month-by-month amortization of the loan. The final
// row absorbs rounding so the balance ends at exactly zero.
func Schedule(principal, annualRatePct, years float64) ([]Payment, error) {
	rate, months, err := loanTerms(annualRatePct, years)
	if err != nil {
		return nil, err
	}
	if principal <= 0 {
		return nil, nil
	}
	monthly := monthlyPayment(principal, rate, months)

	rows := make([]Payment, 0, months)
	balance := principal
	for m := 1; m <= months; m++ {
		interest := balance * rate
		toPrincipal := monthly - interest
		if m == months {
			toPrincipal = balance
		}
		balance -= toPrincipal
		rows = append(rows, Payment{
			Month:     m,
			Payment:   interest + toPrincipal,
			Interest:  interest,
			Principal: toPrincipal,
			Balance:   balance,
		})
	}
	return rows, nil
}
