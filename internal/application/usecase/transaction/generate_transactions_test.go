package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

func d(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

type stubTransactionRepo struct {
	batches  [][]*entity.Transaction
	batchErr error
	singles  []*entity.Transaction
}

func (s *stubTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	s.singles = append(s.singles, txn)
	return nil
}
func (s *stubTransactionRepo) CreateBatch(ctx context.Context, txns []*entity.Transaction) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	s.batches = append(s.batches, txns)
	return nil
}
func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not found")
}
func (s *stubTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}
func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubTransactionRepo) FindAttachedToStages(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) FindAttachedToEstimates(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) FindAttachedToItems(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) CountByCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type stubEstimateRepo struct {
	estimates map[uuid.UUID]*entity.Estimate
}

func (s *stubEstimateRepo) Create(ctx context.Context, e *entity.Estimate) error { return nil }
func (s *stubEstimateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	if e, ok := s.estimates[id]; ok {
		return e, nil
	}
	return nil, errors.New("not found")
}
func (s *stubEstimateRepo) FindByStage(ctx context.Context, id uuid.UUID) ([]*entity.Estimate, error) {
	return nil, nil
}
func (s *stubEstimateRepo) ListIDsByStages(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubEstimateRepo) Update(ctx context.Context, e *entity.Estimate) error { return nil }
func (s *stubEstimateRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type stubItemRepo struct {
	items map[uuid.UUID]*entity.EstimateItem
}

func (s *stubItemRepo) Create(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (s *stubItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.EstimateItem, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, errors.New("not found")
}
func (s *stubItemRepo) FindByEstimate(ctx context.Context, id uuid.UUID) ([]*entity.EstimateItem, error) {
	return nil, nil
}
func (s *stubItemRepo) FindByEstimateWithPriceItems(ctx context.Context, id uuid.UUID) ([]*entity.EstimateItemWithPriceItem, error) {
	return nil, nil
}
func (s *stubItemRepo) ListIDsByEstimates(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubItemRepo) Update(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (s *stubItemRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type stubPriceItemRepo struct {
	items map[uuid.UUID]*entity.PriceItem
}

func (s *stubPriceItemRepo) Create(ctx context.Context, item *entity.PriceItem) error { return nil }
func (s *stubPriceItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PriceItem, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, errors.New("not found")
}
func (s *stubPriceItemRepo) FindAll(ctx context.Context) ([]*entity.PriceItem, error) {
	return nil, nil
}
func (s *stubPriceItemRepo) Update(ctx context.Context, item *entity.PriceItem) error { return nil }

type stubCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, c *entity.Category) error { return nil }
func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := s.categories[id]; ok {
		return c, nil
	}
	return nil, errors.New("not found")
}
func (s *stubCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func TestGenerateTransactionsUseCase_Execute(t *testing.T) {
	stageID := uuid.New()
	estimate := entity.NewEstimate(stageID)
	category := entity.NewCategory("Materials", "")

	// 10 x 100 with a 20% markup: contractor price 1000, income 200.
	item := entity.NewEstimateItem(estimate.ID, nil, "Concrete works", d("10"), d("100"), entity.IncomeTypeMarkup, d("20"), true)

	newUseCase := func(txnRepo *stubTransactionRepo) *GenerateTransactionsUseCase {
		return NewGenerateTransactionsUseCase(
			txnRepo,
			&stubEstimateRepo{estimates: map[uuid.UUID]*entity.Estimate{estimate.ID: estimate}},
			&stubItemRepo{items: map[uuid.UUID]*entity.EstimateItem{item.ID: item}},
			&stubPriceItemRepo{items: map[uuid.UUID]*entity.PriceItem{}},
			&stubCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}},
		)
	}

	t.Run("generates expense and margin rows in one batch", func(t *testing.T) {
		txnRepo := &stubTransactionRepo{}
		uc := newUseCase(txnRepo)

		output, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: estimate.ID,
			Date:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Directives: []ItemDirective{{
				ItemID:            item.ID,
				IncludeExpense:    true,
				ExpenseCategoryID: category.ID,
				IncludeIncome:     true,
				IncomeCategoryID:  category.ID,
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.CreatedCount != 2 {
			t.Fatalf("expected 2 created transactions, got %d", output.CreatedCount)
		}
		if len(txnRepo.batches) != 1 {
			t.Fatalf("expected a single batch, got %d", len(txnRepo.batches))
		}
		if len(txnRepo.singles) != 0 {
			t.Fatalf("expected no single inserts, got %d", len(txnRepo.singles))
		}

		batch := txnRepo.batches[0]

		expense := batch[0]
		if !expense.Amount.Equal(d("1000")) {
			t.Errorf("expected expense amount 1000 (contractor price), got %s", expense.Amount)
		}
		if expense.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense type, got %s", expense.Type)
		}
		if expense.Attachment.Kind != entity.AttachmentItem || expense.Attachment.TargetID != item.ID {
			t.Errorf("expected item attachment, got %+v", expense.Attachment)
		}

		// The margin row is recorded as a budget expense, never as income.
		margin := batch[1]
		if !margin.Amount.Equal(d("200")) {
			t.Errorf("expected margin amount 200, got %s", margin.Amount)
		}
		if margin.Type != entity.TransactionTypeExpense {
			t.Errorf("expected margin row to be an expense, got %s", margin.Type)
		}
		if !strings.Contains(margin.Description, "markup/kickback") {
			t.Errorf("expected margin description to mention markup/kickback, got %q", margin.Description)
		}
		if !strings.Contains(margin.Description, "20%") {
			t.Errorf("expected margin description to carry the rate, got %q", margin.Description)
		}
	})

	t.Run("empty directives are rejected", func(t *testing.T) {
		uc := newUseCase(&stubTransactionRepo{})

		_, err := uc.Execute(context.Background(), GenerateTransactionsInput{EstimateID: estimate.ID})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeEmptyDirectives {
			t.Fatalf("expected empty directives error, got %v", err)
		}
	})

	t.Run("unknown estimate fails", func(t *testing.T) {
		uc := newUseCase(&stubTransactionRepo{})

		_, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: uuid.New(),
			Directives: []ItemDirective{{ItemID: item.ID}},
		})

		var estErr *domainerror.EstimateError
		if !errors.As(err, &estErr) || estErr.Code != domainerror.ErrCodeEstimateNotFound {
			t.Fatalf("expected estimate not found error, got %v", err)
		}
	})

	t.Run("item from another estimate fails", func(t *testing.T) {
		foreign := entity.NewEstimateItem(uuid.New(), nil, "other", d("1"), d("1"), entity.IncomeTypeNone, d("0"), false)
		txnRepo := &stubTransactionRepo{}
		uc := NewGenerateTransactionsUseCase(
			txnRepo,
			&stubEstimateRepo{estimates: map[uuid.UUID]*entity.Estimate{estimate.ID: estimate}},
			&stubItemRepo{items: map[uuid.UUID]*entity.EstimateItem{foreign.ID: foreign}},
			&stubPriceItemRepo{items: map[uuid.UUID]*entity.PriceItem{}},
			&stubCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}},
		)

		_, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: estimate.ID,
			Directives: []ItemDirective{{ItemID: foreign.ID, IncludeExpense: true, ExpenseCategoryID: category.ID}},
		})

		var estErr *domainerror.EstimateError
		if !errors.As(err, &estErr) || estErr.Code != domainerror.ErrCodeEstimateItemNotFound {
			t.Fatalf("expected estimate item not found error, got %v", err)
		}
		if len(txnRepo.batches) != 0 {
			t.Error("expected no batch to be committed")
		}
	})

	t.Run("missing category fails the whole batch", func(t *testing.T) {
		txnRepo := &stubTransactionRepo{}
		uc := newUseCase(txnRepo)

		_, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: estimate.ID,
			Directives: []ItemDirective{{
				ItemID:            item.ID,
				IncludeExpense:    true,
				ExpenseCategoryID: uuid.New(),
			}},
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
		if len(txnRepo.batches) != 0 {
			t.Error("expected no batch to be committed")
		}
	})

	t.Run("storage failure surfaces as generation failure", func(t *testing.T) {
		txnRepo := &stubTransactionRepo{batchErr: errors.New("constraint violation")}
		uc := newUseCase(txnRepo)

		_, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: estimate.ID,
			Directives: []ItemDirective{{
				ItemID:            item.ID,
				IncludeExpense:    true,
				ExpenseCategoryID: category.ID,
			}},
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeGenerationFailed {
			t.Fatalf("expected generation failed error, got %v", err)
		}
	})

	t.Run("directives selecting nothing commit nothing", func(t *testing.T) {
		txnRepo := &stubTransactionRepo{}
		uc := newUseCase(txnRepo)

		output, err := uc.Execute(context.Background(), GenerateTransactionsInput{
			EstimateID: estimate.ID,
			Directives: []ItemDirective{{ItemID: item.ID}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.CreatedCount != 0 {
			t.Errorf("expected count 0, got %d", output.CreatedCount)
		}
		if len(txnRepo.batches) != 0 {
			t.Error("expected no batch call for an empty build")
		}
	})
}
