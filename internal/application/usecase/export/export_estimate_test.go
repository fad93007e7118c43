package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

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

type stubEstimateRepo struct {
	estimate *entity.Estimate
}

func (s *stubEstimateRepo) Create(ctx context.Context, e *entity.Estimate) error { return nil }
func (s *stubEstimateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	if s.estimate != nil && s.estimate.ID == id {
		return s.estimate, nil
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
	items []*entity.EstimateItemWithPriceItem
}

func (s *stubItemRepo) Create(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (s *stubItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.EstimateItem, error) {
	return nil, errors.New("not found")
}
func (s *stubItemRepo) FindByEstimate(ctx context.Context, id uuid.UUID) ([]*entity.EstimateItem, error) {
	return nil, nil
}
func (s *stubItemRepo) FindByEstimateWithPriceItems(ctx context.Context, id uuid.UUID) ([]*entity.EstimateItemWithPriceItem, error) {
	return s.items, nil
}
func (s *stubItemRepo) ListIDsByEstimates(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubItemRepo) Update(ctx context.Context, item *entity.EstimateItem) error { return nil }
func (s *stubItemRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func TestExportEstimateUseCase_Execute(t *testing.T) {
	estimate := entity.NewEstimate(uuid.New())

	// 10 x 100 with a 20% markup: base 1000, client 1200, contractor 1000.
	markupItem := entity.NewEstimateItem(estimate.ID, nil, "Concrete works", d("10"), d("100"), entity.IncomeTypeMarkup, d("20"), true)
	// 5 x 200 with a flat 150 kickback: base 1000, client 1000, contractor 850.
	kickbackItem := entity.NewEstimateItem(estimate.ID, nil, "Excavation", d("5"), d("200"), entity.IncomeTypeKickback, d("150"), false)

	uc := NewExportEstimateUseCase(
		&stubEstimateRepo{estimate: estimate},
		&stubItemRepo{items: []*entity.EstimateItemWithPriceItem{
			{Item: markupItem},
			{Item: kickbackItem},
		}},
	)

	readRows := func(t *testing.T, data []byte) [][]string {
		t.Helper()
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows("Sheet1")
		if err != nil {
			t.Fatalf("failed to read rows: %v", err)
		}
		return rows
	}

	t.Run("client audience prices at client price", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportEstimateInput{
			EstimateID: estimate.ID,
			Audience:   AudienceClient,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ContentType != xlsxContentType {
			t.Errorf("unexpected content type %q", output.ContentType)
		}
		if !strings.HasSuffix(output.FileName, "-client.xlsx") {
			t.Errorf("unexpected file name %q", output.FileName)
		}

		rows := readRows(t, output.Data)
		if len(rows) != 4 {
			t.Fatalf("expected header, 2 items and total row, got %d rows", len(rows))
		}

		if rows[1][5] != "1200" {
			t.Errorf("expected markup row total 1200, got %q", rows[1][5])
		}
		if rows[2][5] != "1000" {
			t.Errorf("expected kickback row total 1000, got %q", rows[2][5])
		}
		if rows[3][5] != "2200" {
			t.Errorf("expected grand total 2200, got %q", rows[3][5])
		}

		// The printed unit price follows the audience total.
		if rows[1][4] != "120" {
			t.Errorf("expected unit price 120, got %q", rows[1][4])
		}
	})

	t.Run("contractor audience prices at contractor price", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportEstimateInput{
			EstimateID: estimate.ID,
			Audience:   AudienceContractor,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows := readRows(t, output.Data)
		if rows[1][5] != "1000" {
			t.Errorf("expected markup row total 1000, got %q", rows[1][5])
		}
		if rows[2][5] != "850" {
			t.Errorf("expected kickback row total 850, got %q", rows[2][5])
		}
		if rows[3][5] != "1850" {
			t.Errorf("expected grand total 1850, got %q", rows[3][5])
		}

		if len(rows[0]) > 6 {
			t.Error("expected no margin column outside the self audience")
		}
	})

	t.Run("self audience shows base price and margin column", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportEstimateInput{
			EstimateID: estimate.ID,
			Audience:   AudienceSelf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows := readRows(t, output.Data)
		if rows[0][6] != "Margin" {
			t.Errorf("expected margin header, got %q", rows[0][6])
		}
		if rows[1][5] != "1000" {
			t.Errorf("expected base total 1000, got %q", rows[1][5])
		}
		if rows[1][6] != "20%" {
			t.Errorf("expected margin 20%%, got %q", rows[1][6])
		}
		if rows[2][6] != "150.00" {
			t.Errorf("expected margin 150.00, got %q", rows[2][6])
		}
	})

	t.Run("invalid audience is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ExportEstimateInput{
			EstimateID: estimate.ID,
			Audience:   "accountant",
		})

		var estErr *domainerror.EstimateError
		if !errors.As(err, &estErr) || estErr.Code != domainerror.ErrCodeInvalidAudience {
			t.Fatalf("expected invalid audience error, got %v", err)
		}
	})

	t.Run("unknown estimate fails", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ExportEstimateInput{
			EstimateID: uuid.New(),
			Audience:   AudienceClient,
		})

		var estErr *domainerror.EstimateError
		if !errors.As(err, &estErr) || estErr.Code != domainerror.ErrCodeEstimateNotFound {
			t.Fatalf("expected estimate not found error, got %v", err)
		}
	})
}
