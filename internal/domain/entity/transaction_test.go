package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newID() uuid.UUID {
	return uuid.New()
}

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		txType TransactionType
		want   string
	}{
		{TransactionTypeIncome, "100"},
		{TransactionTypeDebtReceive, "100"},
		{TransactionTypeDebtReceived, "100"},
		{TransactionTypeExpense, "-100"},
		{TransactionTypeTransfer, "-100"},
		{TransactionTypeDebtGive, "-100"},
		{TransactionTypeDebtRepay, "-100"},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			txn := NewTransaction(d("100"), tt.txType, newID(), nil, "", time.Now(), Attachment{})
			if got := txn.SignedAmount(); !got.Equal(d(tt.want)) {
				t.Errorf("expected signed amount %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	valid := []TransactionType{
		TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeDebtGive, TransactionTypeDebtReceive,
		TransactionTypeDebtRepay, TransactionTypeDebtReceived,
	}
	for _, txType := range valid {
		if !IsValidTransactionType(txType) {
			t.Errorf("expected %q to be valid", txType)
		}
	}

	if IsValidTransactionType("withdrawal") {
		t.Error("expected unknown type to be invalid")
	}
	if IsValidTransactionType("") {
		t.Error("expected empty type to be invalid")
	}
}

func TestAttachment(t *testing.T) {
	t.Run("zero value is direct", func(t *testing.T) {
		var attachment Attachment
		if !attachment.IsDirect() {
			t.Error("expected zero attachment to be direct")
		}
	})

	t.Run("constructors set the kind", func(t *testing.T) {
		id := newID()

		tests := []struct {
			attachment Attachment
			wantKind   AttachmentKind
		}{
			{AttachToStage(id), AttachmentStage},
			{AttachToEstimate(id), AttachmentEstimate},
			{AttachToItem(id), AttachmentItem},
		}

		for _, tt := range tests {
			if tt.attachment.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, tt.attachment.Kind)
			}
			if tt.attachment.TargetID != id {
				t.Errorf("expected target %s, got %s", id, tt.attachment.TargetID)
			}
			if tt.attachment.IsDirect() {
				t.Errorf("expected %q attachment not to be direct", tt.wantKind)
			}
		}
	})
}
