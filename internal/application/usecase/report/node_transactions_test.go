package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
)

type fakeSiteRepo struct {
	idsByProject map[uuid.UUID][]uuid.UUID
}

func (f *fakeSiteRepo) Create(ctx context.Context, site *entity.Site) error { return nil }
func (f *fakeSiteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	return nil, errors.New("not found")
}
func (f *fakeSiteRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Site, error) {
	return nil, nil
}
func (f *fakeSiteRepo) ListIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	return f.idsByProject[projectID], nil
}
func (f *fakeSiteRepo) Update(ctx context.Context, site *entity.Site) error { return nil }
func (f *fakeSiteRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeStageRepo struct {
	idsBySite map[uuid.UUID][]uuid.UUID
}

func (f *fakeStageRepo) Create(ctx context.Context, stage *entity.Stage) error { return nil }
func (f *fakeStageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Stage, error) {
	return nil, errors.New("not found")
}
func (f *fakeStageRepo) FindBySite(ctx context.Context, siteID uuid.UUID) ([]*entity.Stage, error) {
	return nil, nil
}
func (f *fakeStageRepo) ListIDsBySites(ctx context.Context, siteIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, siteID := range siteIDs {
		ids = append(ids, f.idsBySite[siteID]...)
	}
	return ids, nil
}
func (f *fakeStageRepo) ExistsBySiteAndOrder(ctx context.Context, siteID uuid.UUID, order int, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}
func (f *fakeStageRepo) Update(ctx context.Context, stage *entity.Stage) error { return nil }
func (f *fakeStageRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type fakeEstimateRepo struct {
	idsByStage map[uuid.UUID][]uuid.UUID
}

func (f *fakeEstimateRepo) Create(ctx context.Context, estimate *entity.Estimate) error { return nil }
func (f *fakeEstimateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	return nil, errors.New("not found")
}
func (f *fakeEstimateRepo) FindByStage(ctx context.Context, stageID uuid.UUID) ([]*entity.Estimate, error) {
	return nil, nil
}
func (f *fakeEstimateRepo) ListIDsByStages(ctx context.Context, stageIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, stageID := range stageIDs {
		ids = append(ids, f.idsByStage[stageID]...)
	}
	return ids, nil
}
func (f *fakeEstimateRepo) Update(ctx context.Context, estimate *entity.Estimate) error { return nil }
func (f *fakeEstimateRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakeItemRepo struct {
	idsByEstimate map[uuid.UUID][]uuid.UUID
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.EstimateItem, error) {
	return nil, errors.New("not found")
}
func (f *fakeItemRepo) FindByEstimate(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) FindByEstimateWithPriceItems(ctx context.Context, estimateID uuid.UUID) ([]*entity.EstimateItemWithPriceItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) ListIDsByEstimates(ctx context.Context, estimateIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, estimateID := range estimateIDs {
		ids = append(ids, f.idsByEstimate[estimateID]...)
	}
	return ids, nil
}
func (f *fakeItemRepo) Update(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakeTransactionRepo struct {
	byStage    map[uuid.UUID][]*entity.Transaction
	byEstimate map[uuid.UUID][]*entity.Transaction
	byItem     map[uuid.UUID][]*entity.Transaction

	stageQueries    int
	estimateQueries int
	itemQueries     int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not found")
}
func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeTransactionRepo) FindAttachedToStages(ctx context.Context, stageIDs []uuid.UUID) ([]*entity.Transaction, error) {
	f.stageQueries++
	return collect(f.byStage, stageIDs), nil
}
func (f *fakeTransactionRepo) FindAttachedToEstimates(ctx context.Context, estimateIDs []uuid.UUID) ([]*entity.Transaction, error) {
	f.estimateQueries++
	return collect(f.byEstimate, estimateIDs), nil
}
func (f *fakeTransactionRepo) FindAttachedToItems(ctx context.Context, itemIDs []uuid.UUID) ([]*entity.Transaction, error) {
	f.itemQueries++
	return collect(f.byItem, itemIDs), nil
}
func (f *fakeTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

func collect(m map[uuid.UUID][]*entity.Transaction, ids []uuid.UUID) []*entity.Transaction {
	var out []*entity.Transaction
	for _, id := range ids {
		out = append(out, m[id]...)
	}
	return out
}

func dated(amount string, txType entity.TransactionType, date time.Time) *entity.Transaction {
	return entity.NewTransaction(d(amount), txType, uuid.New(), nil, "", date, entity.Attachment{})
}

func TestNodeTransactionsUseCase_Execute(t *testing.T) {
	projectID := uuid.New()
	siteID := uuid.New()
	stageID := uuid.New()
	estimateID := uuid.New()
	itemID := uuid.New()

	day := func(n int) time.Time {
		return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
	}

	newFakes := func() (*fakeSiteRepo, *fakeStageRepo, *fakeEstimateRepo, *fakeItemRepo, *fakeTransactionRepo) {
		return &fakeSiteRepo{idsByProject: map[uuid.UUID][]uuid.UUID{projectID: {siteID}}},
			&fakeStageRepo{idsBySite: map[uuid.UUID][]uuid.UUID{siteID: {stageID}}},
			&fakeEstimateRepo{idsByStage: map[uuid.UUID][]uuid.UUID{stageID: {estimateID}}},
			&fakeItemRepo{idsByEstimate: map[uuid.UUID][]uuid.UUID{estimateID: {itemID}}},
			&fakeTransactionRepo{
				byStage:    map[uuid.UUID][]*entity.Transaction{},
				byEstimate: map[uuid.UUID][]*entity.Transaction{},
				byItem:     map[uuid.UUID][]*entity.Transaction{},
			}
	}

	t.Run("project rolls up all attachment paths", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		stageTxn := dated("100", entity.TransactionTypeExpense, day(1))
		estimateTxn := dated("200", entity.TransactionTypeIncome, day(2))
		itemTxn := dated("50", entity.TransactionTypeExpense, day(3))
		txnRepo.byStage[stageID] = []*entity.Transaction{stageTxn}
		txnRepo.byEstimate[estimateID] = []*entity.Transaction{estimateTxn}
		txnRepo.byItem[itemID] = []*entity.Transaction{itemTxn}

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		output, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: NodeProject, ID: projectID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		if !output.Summary.Balance.Equal(d("50")) {
			t.Errorf("expected balance 50, got %s", output.Summary.Balance)
		}
	})

	t.Run("duplicates across paths are removed", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		shared := dated("100", entity.TransactionTypeExpense, day(1))
		txnRepo.byStage[stageID] = []*entity.Transaction{shared}
		txnRepo.byEstimate[estimateID] = []*entity.Transaction{shared}

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		output, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: NodeSite, ID: siteID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction after de-duplication, got %d", len(output.Transactions))
		}
		if !output.Summary.TotalExpense.Equal(d("100")) {
			t.Errorf("expected expense 100, got %s", output.Summary.TotalExpense)
		}
	})

	t.Run("orders most recent first with created_at tie-break", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		older := dated("10", entity.TransactionTypeIncome, day(1))
		newer := dated("20", entity.TransactionTypeIncome, day(5))
		sameDayEarly := dated("30", entity.TransactionTypeIncome, day(3))
		sameDayEarly.CreatedAt = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
		sameDayLate := dated("40", entity.TransactionTypeIncome, day(3))
		sameDayLate.CreatedAt = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

		txnRepo.byStage[stageID] = []*entity.Transaction{older, newer, sameDayEarly, sameDayLate}

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		output, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: NodeStage, ID: stageID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []*entity.Transaction{newer, sameDayLate, sameDayEarly, older}
		for i, expected := range want {
			if output.Transactions[i].ID != expected.ID {
				t.Fatalf("position %d: expected amount %s, got %s",
					i, expected.Amount, output.Transactions[i].Amount)
			}
		}
	})

	t.Run("item node queries only the item path", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		itemTxn := dated("50", entity.TransactionTypeExpense, day(1))
		txnRepo.byItem[itemID] = []*entity.Transaction{itemTxn}

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		output, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: NodeItem, ID: itemID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if txnRepo.stageQueries != 0 || txnRepo.estimateQueries != 0 {
			t.Errorf("expected no stage/estimate queries, got %d/%d",
				txnRepo.stageQueries, txnRepo.estimateQueries)
		}
		if txnRepo.itemQueries != 1 {
			t.Errorf("expected 1 item query, got %d", txnRepo.itemQueries)
		}
	})

	t.Run("empty hierarchy yields empty report", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		output, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: NodeProject, ID: uuid.New()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(output.Transactions))
		}
		if output.Summary.Count != 0 {
			t.Errorf("expected count 0, got %d", output.Summary.Count)
		}
	})

	t.Run("unknown node kind fails", func(t *testing.T) {
		siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo := newFakes()

		uc := NewNodeTransactionsUseCase(siteRepo, stageRepo, estimateRepo, itemRepo, txnRepo)
		if _, err := uc.Execute(context.Background(), NodeTransactionsInput{
			Node: NodeRef{Kind: "warehouse", ID: uuid.New()},
		}); err == nil {
			t.Fatal("expected error for unknown node kind")
		}
	})
}
