// Package report contains the hierarchy roll-up reporting use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

// Summary aggregates a transaction set into income and expense pools.
// Amounts are bucketed by the sign of the signed amount, not by nominal type:
// a debt_receive lands in income, a transfer in expense.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Count        int
}

// Summarize computes income, expense, balance and count over the given
// transactions. An empty input yields a zero summary.
func Summarize(transactions []*entity.Transaction) Summary {
	s := Summary{Count: len(transactions)}

	for _, t := range transactions {
		signed := t.SignedAmount()
		if signed.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(signed)
		} else {
			s.TotalExpense = s.TotalExpense.Add(signed.Abs())
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
