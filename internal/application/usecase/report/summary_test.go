package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/domain/entity"
)

func d(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func txn(amount string, txType entity.TransactionType) *entity.Transaction {
	return entity.NewTransaction(d(amount), txType, uuid.New(), nil, "", time.Now(), entity.Attachment{})
}

func TestSummarize(t *testing.T) {
	t.Run("empty input yields zero summary", func(t *testing.T) {
		s := Summarize(nil)

		if s.Count != 0 {
			t.Errorf("expected count 0, got %d", s.Count)
		}
		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Balance.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s balance=%s",
				s.TotalIncome, s.TotalExpense, s.Balance)
		}
	})

	t.Run("buckets by sign of signed amount", func(t *testing.T) {
		s := Summarize([]*entity.Transaction{
			txn("100", entity.TransactionTypeDebtReceive),
			txn("40", entity.TransactionTypeExpense),
		})

		if !s.TotalIncome.Equal(d("100")) {
			t.Errorf("expected income 100, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(d("40")) {
			t.Errorf("expected expense 40, got %s", s.TotalExpense)
		}
		if !s.Balance.Equal(d("60")) {
			t.Errorf("expected balance 60, got %s", s.Balance)
		}
		if s.Count != 2 {
			t.Errorf("expected count 2, got %d", s.Count)
		}
	})

	t.Run("transfers and debt repayments count as expense", func(t *testing.T) {
		s := Summarize([]*entity.Transaction{
			txn("50", entity.TransactionTypeTransfer),
			txn("30", entity.TransactionTypeDebtGive),
			txn("20", entity.TransactionTypeDebtRepay),
		})

		if !s.TotalIncome.IsZero() {
			t.Errorf("expected income 0, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(d("100")) {
			t.Errorf("expected expense 100, got %s", s.TotalExpense)
		}
		if !s.Balance.Equal(d("-100")) {
			t.Errorf("expected balance -100, got %s", s.Balance)
		}
	})
}
