// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/finance"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Loan and profit-margin calculators",
}

var financeLoanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Compute the monthly payment and total interest of a loan",
	Long: `Loan computes a fixed-rate amortizing loan. Unparseable numbers are
treated as zero. Terms are capped at 100 years. Use --schedule to print
every monthly payment.`,
	RunE: runFinanceLoan,
}

func runFinanceLoan(cmd *cobra.Command, args []string) error {
	principal, _ := cmd.Flags().GetString("principal")
	rate, _ := cmd.Flags().GetString("rate")
	years, _ := cmd.Flags().GetString("years")
	schedule, _ := cmd.Flags().GetBool("schedule")

	p, r, y := finance.ParseNumber(principal), finance.ParseNumber(rate), finance.ParseNumber(years)
	result, err := finance.Loan(p, r, y)
	if err != nil {
		return err
	}
	var rows []finance.Payment
	if schedule {
		if rows, err = finance.Schedule(p, r, y); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonFlag(cmd) {
		payload := map[string]any{"loan": result}
		if schedule {
			payload["schedule"] = rows
		}
		return writeJSON(out, payload)
	}

	fmt.Fprintf(out, "Monthly payment: %s\n", usd(result.MonthlyPayment))
	fmt.Fprintf(out, "Total payment:   %s\n", usd(result.TotalPayment))
	fmt.Fprintf(out, "Total interest:  %s\n", usd(result.TotalInterest))

	if schedule {
		fmt.Fprintf(out, "\n%-5s  %12s  %12s  %12s  %14s\n", "Month", "Payment", "Interest", "Principal", "Balance")
		fmt.Fprintln(out, strings.Repeat("-", 63))
		for _, row := range rows {
			fmt.Fprintf(out, "%-5d  %12s  %12s  %12s  %14s\n",
				row.Month, usd(row.Payment), usd(row.Interest), usd(row.Principal), usd(row.Balance))
		}
	}
	return nil
}

var financeMarginCmd = &cobra.Command{
	Use:   "margin",
	Short: "Compute profit, margin, and markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, _ := cmd.Flags().GetString("cost")
		price, _ := cmd.Flags().GetString("price")
		result := finance.Margin(finance.ParseNumber(cost), finance.ParseNumber(price))

		out := cmd.OutOrStdout()
		if jsonFlag(cmd) {
			return writeJSON(out, result)
		}
		fmt.Fprintf(out, "Profit: %s\n", usd(result.Profit))
		fmt.Fprintf(out, "Margin: %.2f%%\n", result.Margin)
		fmt.Fprintf(out, "Markup: %.2f%%\n", result.Markup)
		return nil
	},
}

// usd renders v as US dollars with thousands separators, e.g. "$1,234.50".
func usd(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String() + "." + frac
}

func init() {
	financeLoanCmd.Flags().String("principal", "25000", "loan amount")
	financeLoanCmd.Flags().String("rate", "8.5", "annual interest rate in percent")
	financeLoanCmd.Flags().String("years", "5", "loan term in years")
	financeLoanCmd.Flags().Bool("schedule", false, "print the amortization schedule")
	financeLoanCmd.Flags().Bool("json", false, "output as JSON")

	financeMarginCmd.Flags().String("cost", "40", "cost of goods")
	financeMarginCmd.Flags().String("price", "65", "selling price")
	financeMarginCmd.Flags().Bool("json", false, "output as JSON")

	financeCmd.AddCommand(financeLoanCmd)
	financeCmd.AddCommand(financeMarginCmd)
	rootCmd.AddCommand(financeCmd)
}
