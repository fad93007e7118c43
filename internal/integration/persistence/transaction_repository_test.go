package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find round trip", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		txn := entity.NewTransaction(decimal.NewFromInt(750), entity.TransactionTypeExpense,
			f.category.ID, &f.user.ID, "Cement delivery", day(0), entity.AttachToEstimate(f.estimate.ID))
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		found, err := repo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Amount.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected amount 750, got %s", found.Amount)
		}
		if found.Attachment.Kind != entity.AttachmentEstimate || found.Attachment.TargetID != f.estimate.ID {
			t.Errorf("unexpected attachment %+v", found.Attachment)
		}
		if found.ContractorID == nil || *found.ContractorID != f.user.ID {
			t.Errorf("expected contractor %s, got %v", f.user.ID, found.ContractorID)
		}
	})

	t.Run("batch insert rolls back on failure", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		good := entity.NewTransaction(decimal.NewFromInt(100), entity.TransactionTypeExpense,
			f.category.ID, nil, "", day(0), entity.Attachment{})
		// References a category that does not exist, violating the schema.
		bad := entity.NewTransaction(decimal.NewFromInt(200), entity.TransactionTypeExpense,
			uuid.New(), nil, "", day(0), entity.Attachment{})

		if err := repo.CreateBatch(ctx, []*entity.Transaction{good, bad}); err == nil {
			t.Fatal("expected batch to fail on the bad row")
		}

		count, err := repo.CountByCategory(ctx, f.category.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected the good row to be rolled back, found %d", count)
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewTransactionRepository(db)

		if err := repo.CreateBatch(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("attachment queries return only their level", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		onStage := entity.NewTransaction(decimal.NewFromInt(1), entity.TransactionTypeExpense,
			f.category.ID, nil, "stage", day(0), entity.AttachToStage(f.stage.ID))
		onEstimate := entity.NewTransaction(decimal.NewFromInt(2), entity.TransactionTypeExpense,
			f.category.ID, nil, "estimate", day(0), entity.AttachToEstimate(f.estimate.ID))
		onItem := entity.NewTransaction(decimal.NewFromInt(3), entity.TransactionTypeExpense,
			f.category.ID, nil, "item", day(0), entity.AttachToItem(f.item.ID))
		direct := entity.NewTransaction(decimal.NewFromInt(4), entity.TransactionTypeExpense,
			f.category.ID, nil, "direct", day(0), entity.Attachment{})
		for _, txn := range []*entity.Transaction{onStage, onEstimate, onItem, direct} {
			if err := repo.Create(ctx, txn); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		stageTxns, err := repo.FindAttachedToStages(ctx, []uuid.UUID{f.stage.ID})
		if err != nil || len(stageTxns) != 1 || stageTxns[0].ID != onStage.ID {
			t.Errorf("expected only the stage transaction, got %d (err=%v)", len(stageTxns), err)
		}

		estimateTxns, err := repo.FindAttachedToEstimates(ctx, []uuid.UUID{f.estimate.ID})
		if err != nil || len(estimateTxns) != 1 || estimateTxns[0].ID != onEstimate.ID {
			t.Errorf("expected only the estimate transaction, got %d (err=%v)", len(estimateTxns), err)
		}

		itemTxns, err := repo.FindAttachedToItems(ctx, []uuid.UUID{f.item.ID})
		if err != nil || len(itemTxns) != 1 || itemTxns[0].ID != onItem.ID {
			t.Errorf("expected only the item transaction, got %d (err=%v)", len(itemTxns), err)
		}

		none, err := repo.FindAttachedToStages(ctx, nil)
		if err != nil || len(none) != 0 {
			t.Errorf("expected no transactions for empty id list, got %d (err=%v)", len(none), err)
		}
	})

	t.Run("filter narrows and orders newest first", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		older := entity.NewTransaction(decimal.NewFromInt(10), entity.TransactionTypeExpense,
			f.category.ID, nil, "older", day(0), entity.Attachment{})
		newer := entity.NewTransaction(decimal.NewFromInt(20), entity.TransactionTypeIncome,
			f.category.ID, nil, "newer", day(2), entity.Attachment{})
		newest := entity.NewTransaction(decimal.NewFromInt(30), entity.TransactionTypeExpense,
			f.category.ID, nil, "newest", day(4), entity.Attachment{})
		for _, txn := range []*entity.Transaction{older, newer, newest} {
			if err := repo.Create(ctx, txn); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		all, err := repo.FindByFilter(ctx, adapter.TransactionFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(all))
		}
		if all[0].Transaction.ID != newest.ID || all[2].Transaction.ID != older.ID {
			t.Error("expected transactions ordered by date descending")
		}
		if all[0].Category == nil || all[0].Category.Name != "Materials" {
			t.Error("expected category to be preloaded")
		}

		expenseType := entity.TransactionTypeExpense
		expenses, err := repo.FindByFilter(ctx, adapter.TransactionFilter{Type: &expenseType})
		if err != nil || len(expenses) != 2 {
			t.Errorf("expected 2 expenses, got %d (err=%v)", len(expenses), err)
		}

		start, end := day(1), day(3)
		ranged, err := repo.FindByFilter(ctx, adapter.TransactionFilter{StartDate: &start, EndDate: &end})
		if err != nil || len(ranged) != 1 || ranged[0].Transaction.ID != newer.ID {
			t.Errorf("expected only the middle transaction in range, got %d (err=%v)", len(ranged), err)
		}
	})

	t.Run("delete reports missing rows", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		txn := entity.NewTransaction(decimal.NewFromInt(5), entity.TransactionTypeExpense,
			f.category.ID, nil, "", day(0), entity.Attachment{})
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if err := repo.Delete(ctx, txn.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected not found on second delete, got %v", err)
		}
	})

	t.Run("deleting a line item keeps its transactions", func(t *testing.T) {
		db := openTestDB(t)
		f := seedHierarchy(t, db)
		repo := NewTransactionRepository(db)

		txn := entity.NewTransaction(decimal.NewFromInt(300), entity.TransactionTypeExpense,
			f.category.ID, nil, "", day(0), entity.AttachToItem(f.item.ID))
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if err := NewEstimateItemRepository(db).Delete(ctx, f.item.ID); err != nil {
			t.Fatalf("failed to delete estimate item: %v", err)
		}

		survived, err := repo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("expected transaction to survive item delete, got %v", err)
		}
		if !survived.Attachment.IsDirect() {
			t.Errorf("expected the item reference to be cleared, got %+v", survived.Attachment)
		}
	})
}
